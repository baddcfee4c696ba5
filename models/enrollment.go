package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment binds a player to an event. CurrentTeamID is nullable: the player
// has no team until allocation runs, and moves between teams during rotation.
// MatchesPlayed is the per-event rotation ticket, distinct from the player's
// lifetime counter.
type Enrollment struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID       uint           `gorm:"not null;uniqueIndex:idx_enrollments_event_player;constraint:OnDelete:CASCADE" json:"event_id"`
	PlayerID      uint           `gorm:"not null;uniqueIndex:idx_enrollments_event_player;constraint:OnDelete:CASCADE" json:"player_id"`
	CurrentTeamID *uint          `json:"current_team_id"`
	MatchesPlayed int            `gorm:"not null;default:0" json:"matches_played"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Event       Event  `gorm:"foreignKey:EventID;references:ID" json:"event,omitempty"`
	Player      Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
	CurrentTeam *Team  `gorm:"foreignKey:CurrentTeamID;references:ID" json:"current_team,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

type EnrollPlayerRequest struct {
	EventID  uint `json:"event_id" binding:"required"`
	PlayerID uint `json:"player_id" binding:"required"`
}
