package services

import (
	"errors"

	"rei-da-quadra-api/models"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{
		db: db,
	}
}

// EnrollPlayer signs a player up for an event with no team assigned yet.
func (s *EnrollmentService) EnrollPlayer(eventID, playerID uint) (*models.Enrollment, error) {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var player models.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Enrollment{}).
		Where("event_id = ? AND player_id = ?", eventID, playerID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEnrollmentExists
	}

	enrollment := &models.Enrollment{
		EventID:  eventID,
		PlayerID: playerID,
	}

	if err := s.db.Create(enrollment).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Player").First(enrollment, enrollment.ID).Error; err != nil {
		return nil, err
	}

	return enrollment, nil
}

func (s *EnrollmentService) ListByEvent(eventID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment

	result := s.db.Where("event_id = ?", eventID).
		Order("id ASC").
		Preload("Player").
		Find(&enrollments)

	if result.Error != nil {
		return nil, result.Error
	}

	return enrollments, nil
}

func (s *EnrollmentService) ListByTeam(teamID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment

	result := s.db.Where("current_team_id = ?", teamID).
		Order("id ASC").
		Preload("Player").
		Find(&enrollments)

	if result.Error != nil {
		return nil, result.Error
	}

	return enrollments, nil
}

func (s *EnrollmentService) CountByTeam(teamID uint) (int64, error) {
	var count int64

	result := s.db.Model(&models.Enrollment{}).
		Where("current_team_id = ?", teamID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
