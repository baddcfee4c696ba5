package services

import (
	"errors"

	"rei-da-quadra-api/models"
	"rei-da-quadra-api/utils"

	"gorm.io/gorm"
)

// PointsService is the rating ledger. Every skill-point mutation goes through
// it so that the player row and the append-only history stay consistent: each
// history entry snapshots the player's points at write time.
type PointsService struct {
	db *gorm.DB
}

func NewPointsService(db *gorm.DB) *PointsService {
	return &PointsService{
		db: db,
	}
}

// ApplyAction applies a fixed per-action adjustment to a player outside any
// match flow (manual correction by an organizer). The ledger entry carries no
// match reference.
func (s *PointsService) ApplyAction(playerID uint, action models.ActionKind) (*models.PointsHistory, error) {
	var entry *models.PointsHistory

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	entry, err := s.applyActionTx(tx, playerID, action, nil)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return entry, nil
}

// GetPlayerHistory returns the player's points statement, newest first.
func (s *PointsService) GetPlayerHistory(playerID uint) ([]models.PointsHistory, error) {
	var count int64
	if err := s.db.Model(&models.Player{}).Where("id = ?", playerID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrPlayerNotFound
	}

	var history []models.PointsHistory
	result := s.db.Where("player_id = ?", playerID).
		Order("created_at DESC, id DESC").
		Preload("Match").
		Find(&history)

	if result.Error != nil {
		return nil, result.Error
	}

	return history, nil
}

// applyActionTx applies the fixed delta for an in-game action inside the
// caller's transaction.
func (s *PointsService) applyActionTx(tx *gorm.DB, playerID uint, action models.ActionKind, matchID *uint) (*models.PointsHistory, error) {
	delta, err := utils.ActionDelta(action)
	if err != nil {
		return nil, err
	}
	return s.applyDeltaTx(tx, playerID, action, delta, matchID, false)
}

// settleMatchTx writes a full-Elo settlement entry for one player, rated
// against the opposing team's average, and credits the lifetime match counter.
func (s *PointsService) settleMatchTx(tx *gorm.DB, playerID uint, opponentAvg float64, won bool, matchID uint) (*models.PointsHistory, error) {
	var player models.Player
	if err := tx.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	actual := 0.0
	action := models.ActionMatchLoss
	if won {
		actual = 1.0
		action = models.ActionMatchWin
	}

	delta := utils.EloDelta(float64(player.SkillPoints), opponentAvg, actual)
	return s.applyDeltaTx(tx, playerID, action, delta, &matchID, true)
}

func (s *PointsService) applyDeltaTx(tx *gorm.DB, playerID uint, action models.ActionKind, delta int, matchID *uint, creditMatch bool) (*models.PointsHistory, error) {
	var player models.Player
	if err := tx.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	before := player.SkillPoints
	after := before + delta

	player.SkillPoints = after
	player.SkillTier = utils.ReclassifyTier(after)
	if creditMatch {
		player.MatchesPlayed++
	}

	if err := tx.Save(&player).Error; err != nil {
		return nil, err
	}

	entry := &models.PointsHistory{
		PlayerID:     playerID,
		MatchID:      matchID,
		Action:       action,
		PointsBefore: before,
		PointsAfter:  after,
		Delta:        delta,
	}

	if err := tx.Create(entry).Error; err != nil {
		return nil, err
	}

	return entry, nil
}
