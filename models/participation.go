package models

import (
	"time"

	"gorm.io/gorm"
)

// PerformanceParticipation is one row per (match, player). TeamID records the
// team the player defended in that specific match; rotation may move the player
// afterwards, so this is never inferred from the current enrollment.
type PerformanceParticipation struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID   uint           `gorm:"not null;uniqueIndex:idx_participations_match_player;constraint:OnDelete:CASCADE" json:"match_id"`
	PlayerID  uint           `gorm:"not null;uniqueIndex:idx_participations_match_player;constraint:OnDelete:CASCADE" json:"player_id"`
	TeamID    uint           `gorm:"not null" json:"team_id"`
	Goals     int            `gorm:"not null;default:0" json:"goals"`
	Assists   int            `gorm:"not null;default:0" json:"assists"`
	Saves     int            `gorm:"not null;default:0" json:"saves"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Match  Match  `gorm:"foreignKey:MatchID;references:ID" json:"match,omitempty"`
	Player Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
	Team   Team   `gorm:"foreignKey:TeamID;references:ID" json:"team,omitempty"`
}

func (PerformanceParticipation) TableName() string {
	return "performance_participations"
}
