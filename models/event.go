package models

import (
	"time"

	"gorm.io/gorm"
)

type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusFinished  EventStatus = "finished"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID                  uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizerID         uint           `gorm:"not null" json:"organizer_id"`
	Name                string         `gorm:"size:150;not null" json:"name"`
	Location            string         `gorm:"size:150" json:"location"`
	EventDate           *time.Time     `json:"event_date"`
	PlayersPerTeam      int            `gorm:"not null" json:"players_per_team"`
	TotalMatchesPlanned int            `gorm:"default:0" json:"total_matches_planned"`
	Status              EventStatus    `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Teams       []Team       `gorm:"foreignKey:EventID" json:"teams,omitempty"`
	Enrollments []Enrollment `gorm:"foreignKey:EventID" json:"enrollments,omitempty"`
	Matches     []Match      `gorm:"foreignKey:EventID" json:"matches,omitempty"`
}

func (Event) TableName() string {
	return "events"
}

type CreateEventRequest struct {
	OrganizerID         uint       `json:"organizer_id" binding:"required"`
	Name                string     `json:"name" binding:"required"`
	Location            string     `json:"location,omitempty"`
	EventDate           *time.Time `json:"event_date,omitempty"`
	PlayersPerTeam      int        `json:"players_per_team" binding:"required,min=1"`
	TotalMatchesPlanned int        `json:"total_matches_planned,omitempty"`
}

// EventStats is the aggregate summary returned by the stats endpoint.
type EventStats struct {
	EventID       uint          `json:"event_id"`
	EnrolledCount int64         `json:"enrolled_count"`
	MatchesPlayed int64         `json:"matches_played"`
	TopScorers    []ScorerEntry `json:"top_scorers"`
	TopRated      []Player      `json:"top_rated"`
}

type ScorerEntry struct {
	PlayerID   uint   `json:"player_id"`
	PlayerName string `json:"player_name"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
	Saves      int    `json:"saves"`
}
