package services

import (
	"errors"

	"rei-da-quadra-api/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// GetEventStats builds the per-event summary: enrollment count, matches
// played, top scorers from participation rows and top rated players.
func (s *StatsService) GetEventStats(eventID uint) (*models.EventStats, error) {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	stats := &models.EventStats{EventID: eventID}

	if err := s.db.Model(&models.Enrollment{}).
		Where("event_id = ?", eventID).
		Count(&stats.EnrolledCount).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).
		Where("event_id = ? AND status = ?", eventID, models.MatchStatusPlayed).
		Count(&stats.MatchesPlayed).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.PerformanceParticipation{}).
		Select("performance_participations.player_id AS player_id, players.name AS player_name, SUM(performance_participations.goals) AS goals, SUM(performance_participations.assists) AS assists, SUM(performance_participations.saves) AS saves").
		Joins("JOIN players ON players.id = performance_participations.player_id").
		Joins("JOIN matches ON matches.id = performance_participations.match_id").
		Where("matches.event_id = ?", eventID).
		Group("performance_participations.player_id, players.name").
		Order("goals DESC, assists DESC").
		Limit(5).
		Scan(&stats.TopScorers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Player{}).
		Joins("JOIN enrollments ON enrollments.player_id = players.id").
		Where("enrollments.event_id = ?", eventID).
		Order("players.skill_points DESC").
		Limit(5).
		Find(&stats.TopRated).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
