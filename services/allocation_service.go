package services

import (
	"fmt"
	"sort"

	"rei-da-quadra-api/models"

	"gorm.io/gorm"
)

// AllocationService runs the one-shot partition of an event's enrollments into
// fixed-size active teams plus a single waiting pool.
type AllocationService struct {
	db *gorm.DB
}

func NewAllocationService(db *gorm.DB) *AllocationService {
	return &AllocationService{
		db: db,
	}
}

// AllocateTeams partitions every enrollment of the event into
// floor(n/playersPerTeam) active teams plus one waiting pool. The waiting pool
// is created unconditionally, even when it ends up empty, so later rotation can
// rely on its existence by construction.
func (s *AllocationService) AllocateTeams(eventID uint) (*models.AllocationResult, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var event models.Event
	if err := tx.First(&event, eventID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var existing int64
	if err := tx.Model(&models.Team{}).Where("event_id = ?", eventID).Count(&existing).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if existing > 0 {
		tx.Rollback()
		return nil, ErrTeamsAlreadyAllocated
	}

	var enrollments []models.Enrollment
	if err := tx.Where("event_id = ?", eventID).
		Order("id ASC").
		Preload("Player").
		Find(&enrollments).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	perTeam := event.PlayersPerTeam
	if len(enrollments) < perTeam*2 {
		tx.Rollback()
		return nil, ErrInsufficientPlayers
	}

	activeCount := len(enrollments) / perTeam

	activeTeams := make([]models.Team, 0, activeCount)
	for i := 1; i <= activeCount; i++ {
		team := models.Team{
			EventID: eventID,
			Name:    fmt.Sprintf("Team %d", i),
			Status:  models.TeamStatusActive,
		}
		if err := tx.Create(&team).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		activeTeams = append(activeTeams, team)
	}

	waitingTeam := models.Team{
		EventID:       eventID,
		Name:          "Waiting Pool",
		IsWaitingPool: true,
		Status:        models.TeamStatusWaiting,
	}
	if err := tx.Create(&waitingTeam).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	rosters, waitingRoster := distributeEnrollments(enrollments, activeCount, perTeam)

	for i, roster := range rosters {
		teamID := activeTeams[i].ID
		for _, enrollment := range roster {
			if err := tx.Model(&models.Enrollment{}).
				Where("id = ?", enrollment.ID).
				Update("current_team_id", teamID).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}
	for _, enrollment := range waitingRoster {
		if err := tx.Model(&models.Enrollment{}).
			Where("id = ?", enrollment.ID).
			Update("current_team_id", waitingTeam.ID).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	result := &models.AllocationResult{
		ActiveTeams: make([]models.TeamWithRoster, 0, len(activeTeams)),
		WaitingTeam: models.TeamWithRoster{Team: waitingTeam, Roster: waitingRoster},
	}
	for i, team := range activeTeams {
		result.ActiveTeams = append(result.ActiveTeams, models.TeamWithRoster{
			Team:   team,
			Roster: rosters[i],
		})
	}

	return result, nil
}

// distributeEnrollments implements the balancing algorithm in memory:
//
//  1. split the pool into star-tier players and everyone else, each sorted by
//     descending skill points;
//  2. seed each active team with one star (falling back to the strongest
//     remaining player once stars run out), surplus stars rejoining the front
//     of the general pool;
//  3. snake-draft the general pool across the active teams, alternating sweep
//     direction each round, until no active team has capacity;
//  4. everyone left goes to the waiting pool.
func distributeEnrollments(enrollments []models.Enrollment, activeCount, perTeam int) ([][]models.Enrollment, []models.Enrollment) {
	var stars, general []models.Enrollment
	for _, e := range enrollments {
		if e.Player.SkillTier == models.TierStar {
			stars = append(stars, e)
		} else {
			general = append(general, e)
		}
	}

	byPointsDesc := func(list []models.Enrollment) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Player.SkillPoints > list[j].Player.SkillPoints
		})
	}
	byPointsDesc(stars)
	byPointsDesc(general)

	rosters := make([][]models.Enrollment, activeCount)

	// Seed pass: one top-tier player per team while they last.
	for i := 0; i < activeCount; i++ {
		if len(stars) > 0 {
			rosters[i] = append(rosters[i], stars[0])
			stars = stars[1:]
		} else if len(general) > 0 {
			rosters[i] = append(rosters[i], general[0])
			general = general[1:]
		}
	}

	// Surplus stars are the strongest players left; they draft first.
	if len(stars) > 0 {
		general = append(append([]models.Enrollment{}, stars...), general...)
	}

	var waiting []models.Enrollment
	forward := true
	for len(general) > 0 {
		hasCapacity := false
		for i := 0; i < activeCount; i++ {
			if len(rosters[i]) < perTeam {
				hasCapacity = true
				break
			}
		}
		if !hasCapacity {
			waiting = append(waiting, general...)
			break
		}

		if forward {
			for i := 0; i < activeCount && len(general) > 0; i++ {
				if len(rosters[i]) < perTeam {
					rosters[i] = append(rosters[i], general[0])
					general = general[1:]
				}
			}
		} else {
			for i := activeCount - 1; i >= 0 && len(general) > 0; i-- {
				if len(rosters[i]) < perTeam {
					rosters[i] = append(rosters[i], general[0])
					general = general[1:]
				}
			}
		}
		forward = !forward
	}

	return rosters, waiting
}
