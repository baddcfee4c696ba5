package services

import (
	"testing"

	"rei-da-quadra-api/models"
	"rei-da-quadra-api/utils"
)

func makeEnrollment(id uint, points int) models.Enrollment {
	return models.Enrollment{
		ID:       id,
		PlayerID: id,
		Player: models.Player{
			ID:          id,
			SkillPoints: points,
			SkillTier:   utils.ReclassifyTier(points),
		},
	}
}

func rosterPointValues(roster []models.Enrollment) []int {
	points := make([]int, 0, len(roster))
	for _, e := range roster {
		points = append(points, e.Player.SkillPoints)
	}
	return points
}

func TestDistributeEnrollmentsSpreadsStars(t *testing.T) {
	// Two stars among twelve players, five per team: two full active teams
	// and two players left waiting.
	pointsList := []int{2600, 2450, 1650, 1500, 1400, 1300, 1200, 1100, 1000, 950, 700, 600}
	enrollments := make([]models.Enrollment, 0, len(pointsList))
	for i, p := range pointsList {
		enrollments = append(enrollments, makeEnrollment(uint(i+1), p))
	}

	rosters, waiting := distributeEnrollments(enrollments, 2, 5)

	if len(rosters) != 2 {
		t.Fatalf("expected 2 rosters, got %d", len(rosters))
	}
	for i, roster := range rosters {
		if len(roster) != 5 {
			t.Errorf("roster %d should hold 5 players, got %d", i, len(roster))
		}
		stars := 0
		for _, e := range roster {
			if e.Player.SkillTier == models.TierStar {
				stars++
			}
		}
		if stars != 1 {
			t.Errorf("roster %d should hold exactly one star, got %d", i, stars)
		}
	}

	if got := rosterPointValues(waiting); len(got) != 2 || got[0] != 700 || got[1] != 600 {
		t.Errorf("weakest leftovers should wait, got %v", got)
	}
}

func TestDistributeEnrollmentsSurplusStarsDraftFirst(t *testing.T) {
	pointsList := []int{2600, 2500, 2450, 1000, 900, 800}
	enrollments := make([]models.Enrollment, 0, len(pointsList))
	for i, p := range pointsList {
		enrollments = append(enrollments, makeEnrollment(uint(i+1), p))
	}

	rosters, waiting := distributeEnrollments(enrollments, 2, 2)

	// Seeds take the top two stars; the third star outranks the whole
	// general pool and is drafted before any of it.
	if got := rosterPointValues(rosters[0]); got[0] != 2600 || got[1] != 2450 {
		t.Errorf("first roster should be [2600 2450], got %v", got)
	}
	if got := rosterPointValues(rosters[1]); got[0] != 2500 || got[1] != 1000 {
		t.Errorf("second roster should be [2500 1000], got %v", got)
	}
	if got := rosterPointValues(waiting); len(got) != 2 || got[0] != 900 || got[1] != 800 {
		t.Errorf("expected [900 800] waiting, got %v", got)
	}
}

func TestDistributeEnrollmentsNoStars(t *testing.T) {
	pointsList := []int{1200, 1100, 1000, 900}
	enrollments := make([]models.Enrollment, 0, len(pointsList))
	for i, p := range pointsList {
		enrollments = append(enrollments, makeEnrollment(uint(i+1), p))
	}

	rosters, waiting := distributeEnrollments(enrollments, 2, 2)

	// Without stars the seed pass takes the strongest general players.
	if got := rosterPointValues(rosters[0]); got[0] != 1200 {
		t.Errorf("strongest player should seed the first team, got %v", got)
	}
	if got := rosterPointValues(rosters[1]); got[0] != 1100 {
		t.Errorf("second strongest should seed the second team, got %v", got)
	}
	if len(waiting) != 0 {
		t.Errorf("nobody should wait when the pool divides evenly, got %d", len(waiting))
	}
}

func TestDistributeEnrollmentsSnakeDirection(t *testing.T) {
	pointsList := []int{600, 500, 400, 300, 200, 100}
	enrollments := make([]models.Enrollment, 0, len(pointsList))
	for i, p := range pointsList {
		enrollments = append(enrollments, makeEnrollment(uint(i+1), p))
	}

	rosters, _ := distributeEnrollments(enrollments, 2, 3)

	// Rounds alternate sweep direction, so the team that drafted last in one
	// round drafts first in the next.
	if got := rosterPointValues(rosters[0]); got[0] != 600 || got[1] != 400 || got[2] != 100 {
		t.Errorf("first roster should be [600 400 100], got %v", got)
	}
	if got := rosterPointValues(rosters[1]); got[0] != 500 || got[1] != 300 || got[2] != 200 {
		t.Errorf("second roster should be [500 300 200], got %v", got)
	}
}

func TestDistributeEnrollmentsIsAPartition(t *testing.T) {
	pointsList := []int{2600, 2450, 2430, 1650, 1500, 1400, 1300, 1200, 1100, 1000, 950, 700, 600}
	enrollments := make([]models.Enrollment, 0, len(pointsList))
	for i, p := range pointsList {
		enrollments = append(enrollments, makeEnrollment(uint(i+1), p))
	}

	rosters, waiting := distributeEnrollments(enrollments, 3, 4)

	seen := make(map[uint]int)
	for _, roster := range rosters {
		for _, e := range roster {
			seen[e.ID]++
		}
	}
	for _, e := range waiting {
		seen[e.ID]++
	}

	if len(seen) != len(enrollments) {
		t.Fatalf("expected every enrollment placed, got %d of %d", len(seen), len(enrollments))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("enrollment %d placed %d times", id, count)
		}
	}
}
