package services

import (
	"testing"

	"rei-da-quadra-api/models"
)

func TestWinnerOf(t *testing.T) {
	tests := []struct {
		name   string
		scoreA int
		scoreB int
		want   uint
	}{
		{"team A wins outright", 3, 1, 10},
		{"team B wins outright", 0, 2, 20},
		{"tie keeps team A on court", 2, 2, 10},
		{"goalless tie keeps team A on court", 0, 0, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			match := &models.Match{
				TeamAID:    10,
				TeamBID:    20,
				TeamAScore: tc.scoreA,
				TeamBScore: tc.scoreB,
			}
			if got := winnerOf(match); got != tc.want {
				t.Errorf("winnerOf(%d-%d) = %d, want %d", tc.scoreA, tc.scoreB, got, tc.want)
			}
		})
	}
}
