package models

import (
	"time"

	"gorm.io/gorm"
)

type TeamStatus string

const (
	TeamStatusActive   TeamStatus = "active"
	TeamStatusWaiting  TeamStatus = "waiting"
	TeamStatusInactive TeamStatus = "inactive"
)

// Team belongs to exactly one event. Exactly one team per event carries
// IsWaitingPool; it holds the players currently off the court.
type Team struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID       uint           `gorm:"not null;constraint:OnDelete:CASCADE" json:"event_id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	Color         string         `gorm:"size:7" json:"color"`
	IsWaitingPool bool           `gorm:"not null;default:false" json:"is_waiting_pool"`
	Status        TeamStatus     `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Event       Event        `gorm:"foreignKey:EventID;references:ID" json:"event,omitempty"`
	Enrollments []Enrollment `gorm:"foreignKey:CurrentTeamID" json:"enrollments,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

type UpdateTeamRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// TeamWithRoster pairs a team with the enrollments currently assigned to it.
type TeamWithRoster struct {
	Team   Team         `json:"team"`
	Roster []Enrollment `json:"roster"`
}

// AllocationResult is returned by the team allocation operation.
type AllocationResult struct {
	ActiveTeams []TeamWithRoster `json:"active_teams"`
	WaitingTeam TeamWithRoster   `json:"waiting_team"`
}
