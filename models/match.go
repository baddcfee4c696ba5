package models

import (
	"time"

	"gorm.io/gorm"
)

type MatchStatus string

const (
	MatchStatusAwaitingStart MatchStatus = "awaiting_start"
	MatchStatusInProgress    MatchStatus = "in_progress"
	MatchStatusPlayed        MatchStatus = "played"
)

// ActionKind identifies a scoring event or a match-settlement cause in the
// points ledger.
type ActionKind string

const (
	ActionGoal    ActionKind = "goal"
	ActionAssist  ActionKind = "assist"
	ActionSave    ActionKind = "save"
	ActionFoul    ActionKind = "foul"
	ActionOffside ActionKind = "offside"

	// Settlement entries written when a match is finalized.
	ActionMatchWin  ActionKind = "match_win"
	ActionMatchLoss ActionKind = "match_loss"
)

type Match struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID    uint           `gorm:"not null;constraint:OnDelete:CASCADE" json:"event_id"`
	TeamAID    uint           `gorm:"not null" json:"team_a_id"`
	TeamBID    uint           `gorm:"not null" json:"team_b_id"`
	TeamAScore int            `gorm:"not null;default:0" json:"team_a_score"`
	TeamBScore int            `gorm:"not null;default:0" json:"team_b_score"`
	Status     MatchStatus    `gorm:"size:20;not null;default:awaiting_start" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Event Event `gorm:"foreignKey:EventID;references:ID" json:"event,omitempty"`
	TeamA Team  `gorm:"foreignKey:TeamAID;references:ID" json:"team_a,omitempty"`
	TeamB Team  `gorm:"foreignKey:TeamBID;references:ID" json:"team_b,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

type CreateMatchRequest struct {
	EventID uint `json:"event_id" binding:"required"`
	TeamAID uint `json:"team_a_id" binding:"required"`
	TeamBID uint `json:"team_b_id" binding:"required"`
}

type MatchActionRequest struct {
	PlayerID uint       `json:"player_id" binding:"required"`
	Action   ActionKind `json:"action" binding:"required,oneof=goal assist save foul offside"`
}

// FinalizedMatchResponse carries the settled match plus the follow-up match
// automatically chained between the winner and the next challenger.
type FinalizedMatchResponse struct {
	Finished *Match `json:"finished"`
	Next     *Match `json:"next"`
}
