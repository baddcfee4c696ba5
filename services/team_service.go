package services

import (
	"errors"

	"rei-da-quadra-api/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db: db,
	}
}

func (s *TeamService) GetTeamByID(id uint) (*models.Team, error) {
	var team models.Team

	result := s.db.First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, result.Error
	}

	return &team, nil
}

func (s *TeamService) ListEventTeams(eventID uint) ([]models.TeamWithRoster, error) {
	var count int64
	if err := s.db.Model(&models.Event{}).Where("id = ?", eventID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrEventNotFound
	}

	var teams []models.Team
	if err := s.db.Where("event_id = ?", eventID).Order("id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}

	result := make([]models.TeamWithRoster, 0, len(teams))
	for _, team := range teams {
		var roster []models.Enrollment
		if err := s.db.Where("current_team_id = ?", team.ID).
			Order("id ASC").
			Preload("Player").
			Find(&roster).Error; err != nil {
			return nil, err
		}
		result = append(result, models.TeamWithRoster{Team: team, Roster: roster})
	}

	return result, nil
}

// GetWaitingTeam fetches the single waiting pool of an event. Its absence on
// an allocated event is a configuration fault, not a recoverable condition.
func (s *TeamService) GetWaitingTeam(eventID uint) (*models.Team, error) {
	var count int64
	if err := s.db.Model(&models.Event{}).Where("id = ?", eventID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrEventNotFound
	}

	var team models.Team
	result := s.db.Where("event_id = ? AND is_waiting_pool = ?", eventID, true).First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrWaitingTeamNotConfigured
		}
		return nil, result.Error
	}

	return &team, nil
}

func (s *TeamService) UpdateTeam(teamID uint, req models.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		team.Name = *req.Name
	}
	if req.Color != nil && *req.Color != "" {
		team.Color = *req.Color
	}

	if err := s.db.Save(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}
