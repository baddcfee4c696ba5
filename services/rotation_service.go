package services

import (
	"errors"
	"sort"

	"rei-da-quadra-api/models"
	"rei-da-quadra-api/utils"

	"gorm.io/gorm"
)

// RotationService applies the king-of-the-court rotation after every finished
// match: participation credit, Elo settlement, waiting-pool substitution under
// the ticket policy, and next-challenger selection.
type RotationService struct {
	db            *gorm.DB
	pointsService *PointsService
}

func NewRotationService(db *gorm.DB) *RotationService {
	return &RotationService{
		db:            db,
		pointsService: NewPointsService(db),
	}
}

// ProcessMatchEnd runs inside the finalize transaction and returns the id of
// the next challenger team.
func (s *RotationService) ProcessMatchEnd(tx *gorm.DB, match *models.Match, winnerTeamID uint) (uint, error) {
	var event models.Event
	if err := tx.First(&event, match.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrEventNotFound
		}
		return 0, err
	}

	losingTeamID := match.TeamAID
	if winnerTeamID == match.TeamAID {
		losingTeamID = match.TeamBID
	}

	winningRoster, err := s.teamRoster(tx, winnerTeamID)
	if err != nil {
		return 0, err
	}
	losingRoster, err := s.teamRoster(tx, losingTeamID)
	if err != nil {
		return 0, err
	}

	// Participation credit: everyone who was on the court gets a ticket
	// punched, independent of the outcome.
	for _, enrollment := range append(append([]models.Enrollment{}, winningRoster...), losingRoster...) {
		if err := tx.Model(&models.Enrollment{}).
			Where("id = ?", enrollment.ID).
			Update("matches_played", gorm.Expr("matches_played + 1")).Error; err != nil {
			return 0, err
		}
	}

	if err := s.settleElo(tx, match.ID, winningRoster, losingRoster); err != nil {
		return 0, err
	}

	if err := s.rotatePlayers(tx, &event, losingTeamID, losingRoster); err != nil {
		return 0, err
	}

	return s.pickNextChallenger(tx, event.ID, winnerTeamID, losingTeamID)
}

// settleElo rates every fielded player against the opposing team's average
// skill points. Both averages are snapshotted before any delta is applied.
func (s *RotationService) settleElo(tx *gorm.DB, matchID uint, winningRoster, losingRoster []models.Enrollment) error {
	winnerAvg := utils.TeamAverageRating(rosterPoints(winningRoster))
	loserAvg := utils.TeamAverageRating(rosterPoints(losingRoster))

	for _, enrollment := range winningRoster {
		if _, err := s.pointsService.settleMatchTx(tx, enrollment.PlayerID, loserAvg, true, matchID); err != nil {
			return err
		}
	}
	for _, enrollment := range losingRoster {
		if _, err := s.pointsService.settleMatchTx(tx, enrollment.PlayerID, winnerAvg, false, matchID); err != nil {
			return err
		}
	}

	return nil
}

// rotatePlayers swaps waiting players onto the losing team under the ticket
// policy. An empty waiting pool means everyone stays put.
func (s *RotationService) rotatePlayers(tx *gorm.DB, event *models.Event, losingTeamID uint, losingRoster []models.Enrollment) error {
	var waitingTeam models.Team
	if err := tx.Where("event_id = ? AND is_waiting_pool = ?", event.ID, true).
		First(&waitingTeam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWaitingTeamNotConfigured
		}
		return err
	}

	waitingRoster, err := s.teamRoster(tx, waitingTeam.ID)
	if err != nil {
		return err
	}
	if len(waitingRoster) == 0 {
		return nil
	}

	entering := selectEntering(waitingRoster, event.PlayersPerTeam)
	leaving := selectLeaving(losingRoster, len(entering))

	for _, enrollment := range entering {
		if err := tx.Model(&models.Enrollment{}).
			Where("id = ?", enrollment.ID).
			Update("current_team_id", losingTeamID).Error; err != nil {
			return err
		}
	}
	for _, enrollment := range leaving {
		if err := tx.Model(&models.Enrollment{}).
			Where("id = ?", enrollment.ID).
			Update("current_team_id", waitingTeam.ID).Error; err != nil {
			return err
		}
	}

	return nil
}

// pickNextChallenger chooses the team with the lowest aggregate ticket count
// among active non-waiting teams other than the winner, preferring teams that
// have not played at all. Falls back to the losing team when nothing else
// qualifies.
func (s *RotationService) pickNextChallenger(tx *gorm.DB, eventID, winnerTeamID, losingTeamID uint) (uint, error) {
	var teams []models.Team
	if err := tx.Where("event_id = ? AND is_waiting_pool = ? AND status = ?",
		eventID, false, models.TeamStatusActive).
		Order("id ASC").
		Find(&teams).Error; err != nil {
		return 0, err
	}

	var candidates []teamTickets
	for _, team := range teams {
		if team.ID == winnerTeamID {
			continue
		}
		var total int64
		if err := tx.Model(&models.Enrollment{}).
			Where("current_team_id = ?", team.ID).
			Select("COALESCE(SUM(matches_played), 0)").
			Scan(&total).Error; err != nil {
			return 0, err
		}
		candidates = append(candidates, teamTickets{TeamID: team.ID, Total: int(total)})
	}

	return chooseChallenger(candidates, losingTeamID), nil
}

type teamTickets struct {
	TeamID uint
	Total  int
}

// chooseChallenger prefers never-played teams, then the lowest aggregate
// ticket count; ties go to the lower team id. With no candidate at all the
// loser challenges again.
func chooseChallenger(candidates []teamTickets, losingTeamID uint) uint {
	if len(candidates) == 0 {
		return losingTeamID
	}

	var fresh []teamTickets
	for _, c := range candidates {
		if c.Total == 0 {
			fresh = append(fresh, c)
		}
	}
	pool := candidates
	if len(fresh) > 0 {
		pool = fresh
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if c.Total < best.Total || (c.Total == best.Total && c.TeamID < best.TeamID) {
			best = c
		}
	}
	return best.TeamID
}

// selectEntering orders the waiting pool by fewest matches played (the
// fairness ticket), weaker players first on ties, and takes up to perTeam of
// them.
func selectEntering(waitingRoster []models.Enrollment, perTeam int) []models.Enrollment {
	sorted := append([]models.Enrollment{}, waitingRoster...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MatchesPlayed != sorted[j].MatchesPlayed {
			return sorted[i].MatchesPlayed < sorted[j].MatchesPlayed
		}
		return sorted[i].Player.SkillPoints < sorted[j].Player.SkillPoints
	})

	if len(sorted) > perTeam {
		sorted = sorted[:perTeam]
	}
	return sorted
}

// selectLeaving picks the losing-team players most in need of rest: highest
// ticket count first, exactly as many as are entering.
func selectLeaving(losingRoster []models.Enrollment, count int) []models.Enrollment {
	sorted := append([]models.Enrollment{}, losingRoster...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MatchesPlayed > sorted[j].MatchesPlayed
	})

	if len(sorted) > count {
		sorted = sorted[:count]
	}
	return sorted
}

func (s *RotationService) teamRoster(tx *gorm.DB, teamID uint) ([]models.Enrollment, error) {
	var roster []models.Enrollment
	if err := tx.Where("current_team_id = ?", teamID).
		Order("id ASC").
		Preload("Player").
		Find(&roster).Error; err != nil {
		return nil, err
	}
	return roster, nil
}

func rosterPoints(roster []models.Enrollment) []int {
	points := make([]int, 0, len(roster))
	for _, enrollment := range roster {
		points = append(points, enrollment.Player.SkillPoints)
	}
	return points
}
