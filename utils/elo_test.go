package utils

import (
	"math"
	"testing"

	"rei-da-quadra-api/models"
)

func TestExpectedOutcome(t *testing.T) {
	if got := ExpectedOutcome(1000, 1000); got != 0.5 {
		t.Errorf("equal ratings should give 0.5, got %f", got)
	}

	stronger := ExpectedOutcome(1200, 1000)
	weaker := ExpectedOutcome(1000, 1200)
	if stronger <= 0.5 {
		t.Errorf("higher-rated player should be favored, got %f", stronger)
	}
	if weaker >= 0.5 {
		t.Errorf("lower-rated player should be the underdog, got %f", weaker)
	}
	if math.Abs(stronger+weaker-1.0) > 1e-9 {
		t.Errorf("expectations should be complementary: %f + %f", stronger, weaker)
	}
	if stronger <= 0 || stronger >= 1 {
		t.Errorf("expected outcome must stay in (0,1), got %f", stronger)
	}
}

func TestEloDelta(t *testing.T) {
	tests := []struct {
		name     string
		self     float64
		opponent float64
		actual   float64
		want     int
	}{
		{"even win", 1000, 1000, 1.0, 16},
		{"even loss", 1000, 1000, 0.0, -16},
		{"even draw", 1000, 1000, 0.5, 0},
		{"favored win", 1200, 1000, 1.0, 8},
		{"favored loss", 1200, 1000, 0.0, -24},
		{"underdog win", 1000, 1200, 1.0, 24},
		{"underdog loss", 1000, 1200, 0.0, -8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EloDelta(tc.self, tc.opponent, tc.actual); got != tc.want {
				t.Errorf("EloDelta(%v, %v, %v) = %d, want %d", tc.self, tc.opponent, tc.actual, got, tc.want)
			}
		})
	}
}

func TestEloDeltaZeroSumForEvenTeams(t *testing.T) {
	win := EloDelta(1000, 1000, 1.0)
	loss := EloDelta(1000, 1000, 0.0)
	if win+loss != 0 {
		t.Errorf("even-match settlement should cancel out: %d + %d", win, loss)
	}
}

func TestActionDelta(t *testing.T) {
	tests := []struct {
		action models.ActionKind
		want   int
	}{
		{models.ActionGoal, 15},
		{models.ActionAssist, 10},
		{models.ActionSave, 5},
		{models.ActionFoul, -15},
		{models.ActionOffside, -5},
	}

	for _, tc := range tests {
		got, err := ActionDelta(tc.action)
		if err != nil {
			t.Fatalf("ActionDelta(%s) returned error: %v", tc.action, err)
		}
		if got != tc.want {
			t.Errorf("ActionDelta(%s) = %d, want %d", tc.action, got, tc.want)
		}
	}
}

func TestActionDeltaRejectsSettlementKinds(t *testing.T) {
	for _, action := range []models.ActionKind{models.ActionMatchWin, models.ActionMatchLoss, "bogus"} {
		if _, err := ActionDelta(action); err == nil {
			t.Errorf("ActionDelta(%s) should have no fixed delta", action)
		}
	}
}

func TestTeamAverageRating(t *testing.T) {
	if got := TeamAverageRating(nil); got != 0 {
		t.Errorf("empty roster average should be 0, got %f", got)
	}
	if got := TeamAverageRating([]int{1200}); got != 1200 {
		t.Errorf("single-player average should be the player's points, got %f", got)
	}
	if got := TeamAverageRating([]int{1000, 1500}); got != 1250 {
		t.Errorf("average of 1000 and 1500 should be 1250, got %f", got)
	}
}

func TestReclassifyTier(t *testing.T) {
	tests := []struct {
		points int
		want   models.SkillTier
	}{
		{2500, models.TierStar},
		{2401, models.TierStar},
		{2400, models.TierAverage},
		{1000, models.TierAverage},
		{801, models.TierAverage},
		{800, models.TierWeak},
		{0, models.TierWeak},
		{-50, models.TierWeak},
	}

	for _, tc := range tests {
		if got := ReclassifyTier(tc.points); got != tc.want {
			t.Errorf("ReclassifyTier(%d) = %s, want %s", tc.points, got, tc.want)
		}
	}
}

// A player can be demoted by negative actions: tiers are re-derived after
// every change, not only on the way up.
func TestReclassifyTierDemotes(t *testing.T) {
	points := 810
	delta, err := ActionDelta(models.ActionFoul)
	if err != nil {
		t.Fatal(err)
	}
	if tier := ReclassifyTier(points); tier != models.TierAverage {
		t.Fatalf("expected average before the foul, got %s", tier)
	}
	if tier := ReclassifyTier(points + delta); tier != models.TierWeak {
		t.Errorf("a foul at 810 points should demote to weak, got %s", tier)
	}
}
