package services

import (
	"log"
	"time"

	"rei-da-quadra-api/models"

	"gorm.io/gorm"
)

// EventCloseService finishes events that have run their course: either the
// planned number of matches has been played or the event date is more than a
// day in the past. Finished events get their teams marked inactive so no new
// match can be created against them.
type EventCloseService struct {
	db *gorm.DB
}

func NewEventCloseService(db *gorm.DB) *EventCloseService {
	return &EventCloseService{
		db: db,
	}
}

func (s *EventCloseService) GetCloseableEventsCount() (int64, error) {
	events, err := s.findCloseableEvents()
	if err != nil {
		return 0, err
	}
	return int64(len(events)), nil
}

// CloseFinishedEvents closes every event whose course has run. Each event is
// closed in its own transaction so one failure does not block the rest.
func (s *EventCloseService) CloseFinishedEvents() error {
	events, err := s.findCloseableEvents()
	if err != nil {
		log.Printf("Error finding closeable events: %v", err)
		return err
	}

	if len(events) == 0 {
		log.Println("No events to close")
		return nil
	}

	log.Printf("Found %d event(s) to close", len(events))

	for _, event := range events {
		if err := s.closeEvent(event.ID); err != nil {
			log.Printf("Error closing event %d: %v", event.ID, err)
			continue
		}
		log.Printf("Closed event %d (%s)", event.ID, event.Name)
	}

	return nil
}

func (s *EventCloseService) findCloseableEvents() ([]models.Event, error) {
	var active []models.Event
	if err := s.db.Where("status = ?", models.EventStatusActive).Find(&active).Error; err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-24 * time.Hour)

	var closeable []models.Event
	for _, event := range active {
		if event.EventDate != nil && event.EventDate.Before(cutoff) {
			closeable = append(closeable, event)
			continue
		}

		if event.TotalMatchesPlanned > 0 {
			var played int64
			if err := s.db.Model(&models.Match{}).
				Where("event_id = ? AND status = ?", event.ID, models.MatchStatusPlayed).
				Count(&played).Error; err != nil {
				return nil, err
			}
			if played >= int64(event.TotalMatchesPlanned) {
				closeable = append(closeable, event)
			}
		}
	}

	return closeable, nil
}

func (s *EventCloseService) closeEvent(eventID uint) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&models.Event{}).
		Where("id = ?", eventID).
		Update("status", models.EventStatusFinished).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Team{}).
		Where("event_id = ?", eventID).
		Update("status", models.TeamStatusInactive).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
