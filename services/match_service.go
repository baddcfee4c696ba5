package services

import (
	"errors"

	"rei-da-quadra-api/models"

	"gorm.io/gorm"
)

// MatchService governs the match state machine:
// awaiting_start -> in_progress -> played. No transition skips a state.
type MatchService struct {
	db              *gorm.DB
	teamService     *TeamService
	eventService    *EventService
	pointsService   *PointsService
	rotationService *RotationService
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db:              db,
		teamService:     NewTeamService(db),
		eventService:    NewEventService(db),
		pointsService:   NewPointsService(db),
		rotationService: NewRotationService(db),
	}
}

func (s *MatchService) GetMatchByID(id uint) (*models.Match, error) {
	var match models.Match

	result := s.db.Preload("TeamA").Preload("TeamB").First(&match, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, result.Error
	}

	return &match, nil
}

func (s *MatchService) ListEventMatches(eventID uint) ([]models.Match, error) {
	var matches []models.Match

	result := s.db.Where("event_id = ?", eventID).
		Order("created_at DESC").
		Preload("TeamA").
		Preload("TeamB").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (*models.Match, error) {
	if _, err := s.eventService.GetEventByID(req.EventID); err != nil {
		return nil, err
	}

	teamA, err := s.teamService.GetTeamByID(req.TeamAID)
	if err != nil {
		return nil, err
	}
	teamB, err := s.teamService.GetTeamByID(req.TeamBID)
	if err != nil {
		return nil, err
	}

	if teamA.Status == models.TeamStatusInactive || teamB.Status == models.TeamStatusInactive {
		return nil, ErrTeamInactive
	}

	match := &models.Match{
		EventID: req.EventID,
		TeamAID: req.TeamAID,
		TeamBID: req.TeamBID,
		Status:  models.MatchStatusAwaitingStart,
	}

	if err := s.db.Create(match).Error; err != nil {
		return nil, err
	}

	return s.GetMatchByID(match.ID)
}

func (s *MatchService) StartMatch(matchID uint) (*models.Match, error) {
	match, err := s.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	if match.Status != models.MatchStatusAwaitingStart {
		return nil, ErrInvalidMatchState
	}

	match.Status = models.MatchStatusInProgress
	if err := s.db.Save(match).Error; err != nil {
		return nil, err
	}

	return match, nil
}

// RecordAction registers a goal, assist, save, foul or offside for a player in
// an in-progress match. The first action lazily creates the player's
// participation row, capturing which side they defend in this match. Goals are
// the authoritative score: each one bumps the scoring team's tally by 1. The
// fixed rating delta is applied and a ledger entry appended in the same
// transaction.
func (s *MatchService) RecordAction(matchID uint, req models.MatchActionRequest) (*models.PerformanceParticipation, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	match, err := s.lockMatch(tx, matchID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if match.Status != models.MatchStatusInProgress {
		tx.Rollback()
		return nil, ErrInvalidMatchState
	}

	participation, err := s.getOrCreateParticipation(tx, match, req.PlayerID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	switch req.Action {
	case models.ActionGoal:
		participation.Goals++
		if participation.TeamID == match.TeamAID {
			match.TeamAScore++
		} else {
			match.TeamBScore++
		}
		if err := tx.Save(match).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	case models.ActionAssist:
		participation.Assists++
	case models.ActionSave:
		participation.Saves++
	}
	// Fouls and offsides carry no participation counter; they only move the
	// player's rating.

	if err := tx.Save(participation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if _, err := s.pointsService.applyActionTx(tx, req.PlayerID, req.Action, &match.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return participation, nil
}

// RemoveAction undoes a recorded counter (and, for goals, the score). It
// deliberately does NOT reverse the points ledger entry: manual corrections
// are rare and the audit trail stays intact. Keep the asymmetry.
func (s *MatchService) RemoveAction(matchID uint, req models.MatchActionRequest) (*models.PerformanceParticipation, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	match, err := s.lockMatch(tx, matchID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if match.Status != models.MatchStatusInProgress {
		tx.Rollback()
		return nil, ErrInvalidMatchState
	}

	var participation models.PerformanceParticipation
	if err := tx.Where("match_id = ? AND player_id = ?", matchID, req.PlayerID).
		First(&participation).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCountersToRemove
		}
		return nil, err
	}

	switch req.Action {
	case models.ActionGoal:
		if participation.Goals <= 0 {
			tx.Rollback()
			return nil, ErrNoCountersToRemove
		}
		participation.Goals--
		if participation.TeamID == match.TeamAID {
			if match.TeamAScore > 0 {
				match.TeamAScore--
			}
		} else {
			if match.TeamBScore > 0 {
				match.TeamBScore--
			}
		}
		if err := tx.Save(match).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	case models.ActionAssist:
		if participation.Assists <= 0 {
			tx.Rollback()
			return nil, ErrNoCountersToRemove
		}
		participation.Assists--
	case models.ActionSave:
		if participation.Saves <= 0 {
			tx.Rollback()
			return nil, ErrNoCountersToRemove
		}
		participation.Saves--
	default:
		// Fouls and offsides never accumulate counters here.
		tx.Rollback()
		return nil, ErrNoCountersToRemove
	}

	if err := tx.Save(&participation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &participation, nil
}

// FinalizeMatch closes an in-progress match: the higher-scoring team wins (an
// exact tie goes to team A, no draws exist in king of the court), ratings are
// settled, the rotation runs, and a fresh match between the winner and the
// chosen challenger is created and started, all in one transaction.
func (s *MatchService) FinalizeMatch(matchID uint) (*models.FinalizedMatchResponse, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	match, err := s.lockMatch(tx, matchID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if match.Status != models.MatchStatusInProgress {
		tx.Rollback()
		return nil, ErrInvalidMatchState
	}

	match.Status = models.MatchStatusPlayed
	if err := tx.Save(match).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	winnerTeamID := winnerOf(match)

	challengerID, err := s.rotationService.ProcessMatchEnd(tx, match, winnerTeamID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// The winner stays on court as team A; the challenger takes the other side.
	next := &models.Match{
		EventID: match.EventID,
		TeamAID: winnerTeamID,
		TeamBID: challengerID,
		Status:  models.MatchStatusAwaitingStart,
	}
	if err := tx.Create(next).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	next.Status = models.MatchStatusInProgress
	if err := tx.Save(next).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	finished, err := s.GetMatchByID(match.ID)
	if err != nil {
		return nil, err
	}
	chained, err := s.GetMatchByID(next.ID)
	if err != nil {
		return nil, err
	}

	return &models.FinalizedMatchResponse{Finished: finished, Next: chained}, nil
}

// winnerOf resolves the winning side by score. Ties go to team A: the sitting
// king keeps the court. Documented behavior, not a bug.
func winnerOf(match *models.Match) uint {
	if match.TeamBScore > match.TeamAScore {
		return match.TeamBID
	}
	return match.TeamAID
}

func (s *MatchService) lockMatch(tx *gorm.DB, matchID uint) (*models.Match, error) {
	var match models.Match
	if err := tx.First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// getOrCreateParticipation resolves the player's performance row for this
// match, determining the side from the current event-team membership when the
// row does not exist yet.
func (s *MatchService) getOrCreateParticipation(tx *gorm.DB, match *models.Match, playerID uint) (*models.PerformanceParticipation, error) {
	var participation models.PerformanceParticipation
	err := tx.Where("match_id = ? AND player_id = ?", match.ID, playerID).
		First(&participation).Error
	if err == nil {
		return &participation, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var enrollment models.Enrollment
	if err := tx.Where("event_id = ? AND player_id = ? AND current_team_id IN ?",
		match.EventID, playerID, []uint{match.TeamAID, match.TeamBID}).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotInMatch
		}
		return nil, err
	}

	participation = models.PerformanceParticipation{
		MatchID:  match.ID,
		PlayerID: playerID,
		TeamID:   *enrollment.CurrentTeamID,
	}
	if err := tx.Create(&participation).Error; err != nil {
		return nil, err
	}

	return &participation, nil
}
