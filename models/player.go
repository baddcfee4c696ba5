package models

import (
	"time"

	"gorm.io/gorm"
)

// SkillTier is the coarse classification derived from a player's skill points.
type SkillTier string

const (
	TierStar    SkillTier = "star"
	TierAverage SkillTier = "average"
	TierWeak    SkillTier = "weak"
)

type Player struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	SkillPoints   int            `gorm:"not null;default:1000" json:"skill_points"`
	SkillTier     SkillTier      `gorm:"size:20;not null;default:average" json:"skill_tier"`
	MatchesPlayed int            `gorm:"not null;default:0" json:"matches_played"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Enrollments   []Enrollment    `gorm:"foreignKey:PlayerID" json:"enrollments,omitempty"`
	PointsHistory []PointsHistory `gorm:"foreignKey:PlayerID" json:"points_history,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required"`
}
