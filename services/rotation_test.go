package services

import (
	"testing"

	"rei-da-quadra-api/models"
)

func makeTicketEnrollment(id uint, points, tickets int) models.Enrollment {
	e := makeEnrollment(id, points)
	e.MatchesPlayed = tickets
	return e
}

func TestSelectEnteringOrdersByTicketThenPoints(t *testing.T) {
	waiting := []models.Enrollment{
		makeTicketEnrollment(1, 1200, 2),
		makeTicketEnrollment(2, 900, 0),
		makeTicketEnrollment(3, 700, 1),
		makeTicketEnrollment(4, 1500, 0),
	}

	entering := selectEntering(waiting, 3)

	if len(entering) != 3 {
		t.Fatalf("expected 3 entering players, got %d", len(entering))
	}
	// Fewest tickets first; on a tie the weaker player enters first.
	want := []uint{2, 4, 3}
	for i, e := range entering {
		if e.ID != want[i] {
			t.Errorf("position %d: expected enrollment %d, got %d", i, want[i], e.ID)
		}
	}
}

func TestSelectEnteringCapsAtTeamSize(t *testing.T) {
	waiting := []models.Enrollment{
		makeTicketEnrollment(1, 1000, 0),
		makeTicketEnrollment(2, 1000, 0),
		makeTicketEnrollment(3, 1000, 0),
	}

	if got := selectEntering(waiting, 2); len(got) != 2 {
		t.Errorf("entering group should be capped at the team size, got %d", len(got))
	}
	if got := selectEntering(waiting, 5); len(got) != 3 {
		t.Errorf("entering group can never exceed the pool, got %d", len(got))
	}
}

func TestSelectLeavingTakesHighestTickets(t *testing.T) {
	losing := []models.Enrollment{
		makeTicketEnrollment(1, 1000, 1),
		makeTicketEnrollment(2, 1000, 4),
		makeTicketEnrollment(3, 1000, 2),
	}

	leaving := selectLeaving(losing, 2)

	if len(leaving) != 2 {
		t.Fatalf("expected 2 leaving players, got %d", len(leaving))
	}
	if leaving[0].ID != 2 || leaving[1].ID != 3 {
		t.Errorf("players with the most matches should rest first, got %d then %d",
			leaving[0].ID, leaving[1].ID)
	}
}

func TestSelectLeavingMatchesEnteringCount(t *testing.T) {
	losing := []models.Enrollment{
		makeTicketEnrollment(1, 1000, 1),
		makeTicketEnrollment(2, 1000, 1),
	}

	if got := selectLeaving(losing, 0); len(got) != 0 {
		t.Errorf("nobody leaves when nobody enters, got %d", len(got))
	}
	if got := selectLeaving(losing, 5); len(got) != 2 {
		t.Errorf("leaving group can never exceed the roster, got %d", len(got))
	}
}

func TestSelectLeavingStableOnEqualTickets(t *testing.T) {
	losing := []models.Enrollment{
		makeTicketEnrollment(10, 1000, 1),
		makeTicketEnrollment(11, 900, 1),
	}

	leaving := selectLeaving(losing, 1)
	if len(leaving) != 1 || leaving[0].ID != 10 {
		t.Errorf("equal tickets should keep roster order, got %v", leaving)
	}
}

func TestChooseChallenger(t *testing.T) {
	t.Run("prefers never-played teams", func(t *testing.T) {
		candidates := []teamTickets{
			{TeamID: 2, Total: 3},
			{TeamID: 3, Total: 0},
			{TeamID: 4, Total: 1},
		}
		if got := chooseChallenger(candidates, 2); got != 3 {
			t.Errorf("fresh team should challenge first, got %d", got)
		}
	})

	t.Run("lowest aggregate when everyone has played", func(t *testing.T) {
		candidates := []teamTickets{
			{TeamID: 2, Total: 5},
			{TeamID: 3, Total: 2},
			{TeamID: 4, Total: 4},
		}
		if got := chooseChallenger(candidates, 2); got != 3 {
			t.Errorf("expected the most-rested team, got %d", got)
		}
	})

	t.Run("ties go to the lower team id", func(t *testing.T) {
		candidates := []teamTickets{
			{TeamID: 4, Total: 2},
			{TeamID: 2, Total: 2},
		}
		if got := chooseChallenger(candidates, 4); got != 2 {
			t.Errorf("tied aggregates should resolve to the lower id, got %d", got)
		}
	})

	t.Run("loser rematches when nobody else can play", func(t *testing.T) {
		if got := chooseChallenger(nil, 7); got != 7 {
			t.Errorf("expected the losing team as fallback, got %d", got)
		}
	})

	t.Run("losing team is a regular candidate", func(t *testing.T) {
		candidates := []teamTickets{
			{TeamID: 2, Total: 1},
			{TeamID: 3, Total: 1},
		}
		// Team 2 just lost but still has the joint-lowest aggregate.
		if got := chooseChallenger(candidates, 2); got != 2 {
			t.Errorf("the loser competes on equal footing, got %d", got)
		}
	})
}
