package utils

import (
	"fmt"
	"math"

	"rei-da-quadra-api/models"
)

// KFactor is the ELO K-factor used for match settlement.
const KFactor = 32.0

// Fixed point adjustments applied immediately when an in-game action is
// recorded. Flat values, independent of opponent strength.
var actionDeltas = map[models.ActionKind]int{
	models.ActionGoal:    15,
	models.ActionAssist:  10,
	models.ActionSave:    5,
	models.ActionFoul:    -15,
	models.ActionOffside: -5,
}

// ActionDelta returns the fixed adjustment for a recordable in-game action.
func ActionDelta(action models.ActionKind) (int, error) {
	delta, ok := actionDeltas[action]
	if !ok {
		return 0, fmt.Errorf("no fixed delta for action %q", action)
	}
	return delta, nil
}

// ExpectedOutcome returns the probability in (0,1) that a player rated
// ratingSelf beats an opponent rated ratingOpponent, per the standard ELO
// formula.
func ExpectedOutcome(ratingSelf, ratingOpponent float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingOpponent-ratingSelf)/400))
}

// EloDelta calculates the rounded rating change for a player given the actual
// result (1.0 win, 0.5 draw, 0.0 loss).
func EloDelta(ratingSelf, ratingOpponent, actualResult float64) int {
	expected := ExpectedOutcome(ratingSelf, ratingOpponent)
	return int(math.Round(KFactor * (actualResult - expected)))
}

// TeamAverageRating calculates the average skill points of a set of players.
// Used as the opponent rating during team settlement: each player is rated
// against the opposing team's average, not against individual opponents.
func TeamAverageRating(points []int) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0
	for _, p := range points {
		sum += p
	}
	return float64(sum) / float64(len(points))
}

// ReclassifyTier derives the skill tier from a points total. Applied after
// every point change, including negative ones: a foul streak can demote a
// player's tier.
func ReclassifyTier(points int) models.SkillTier {
	switch {
	case points > 2400:
		return models.TierStar
	case points > 800:
		return models.TierAverage
	default:
		return models.TierWeak
	}
}
