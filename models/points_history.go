package models

import (
	"time"
)

// PointsHistory is the append-only rating ledger. Rows are never updated after
// insertion: PointsAfter is a point-in-time snapshot of the player's skill
// points at write time, and PointsAfter == PointsBefore + Delta always holds.
type PointsHistory struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	PlayerID     uint       `gorm:"not null;constraint:OnDelete:CASCADE" json:"player_id"`
	MatchID      *uint      `json:"match_id"`
	Action       ActionKind `gorm:"size:20;not null" json:"action"`
	PointsBefore int        `gorm:"not null" json:"points_before"`
	PointsAfter  int        `gorm:"not null" json:"points_after"`
	Delta        int        `gorm:"not null" json:"delta"`
	CreatedAt    time.Time  `json:"created_at"`

	// Relationships
	Player Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
	Match  *Match `gorm:"foreignKey:MatchID;references:ID" json:"match,omitempty"`
}

func (PointsHistory) TableName() string {
	return "points_history"
}

type PlayerActionRequest struct {
	Action ActionKind `json:"action" binding:"required,oneof=goal assist save foul offside"`
}
