package services

import (
	"errors"

	"rei-da-quadra-api/models"

	"gorm.io/gorm"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		db: db,
	}
}

func (s *EventService) GetEventByID(id uint) (*models.Event, error) {
	var event models.Event

	result := s.db.First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, result.Error
	}

	return &event, nil
}

func (s *EventService) CreateEvent(req models.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		OrganizerID:         req.OrganizerID,
		Name:                req.Name,
		Location:            req.Location,
		EventDate:           req.EventDate,
		PlayersPerTeam:      req.PlayersPerTeam,
		TotalMatchesPlanned: req.TotalMatchesPlanned,
		Status:              models.EventStatusActive,
	}

	result := s.db.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}

	return event, nil
}

func (s *EventService) ListEvents() ([]models.Event, error) {
	var events []models.Event

	result := s.db.Order("created_at DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}
