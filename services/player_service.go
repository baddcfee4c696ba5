package services

import (
	"errors"

	"rei-da-quadra-api/models"
	"rei-da-quadra-api/utils"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, result.Error
	}

	return &player, nil
}

func (s *PlayerService) CreatePlayer(name string) (*models.Player, error) {
	player := &models.Player{
		Name:        name,
		SkillPoints: 1000,
		SkillTier:   utils.ReclassifyTier(1000),
	}

	result := s.db.Create(player)
	if result.Error != nil {
		return nil, result.Error
	}

	return player, nil
}

func (s *PlayerService) GetTopPlayers(limit int) ([]models.Player, error) {
	var players []models.Player

	result := s.db.Order("skill_points DESC").
		Limit(limit).
		Find(&players)

	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}
