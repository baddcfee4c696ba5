package fixtures

import (
	"fmt"
	"log"
	"time"

	"rei-da-quadra-api/models"
	"rei-da-quadra-api/utils"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// Seed players spread across the three skill tiers: two stars, a band of
// average players and a couple of weak ones, enough for two teams of five
// plus a waiting pool.
var seedPlayers = []struct {
	Name   string
	Points int
}{
	{"Carlos", 2600},
	{"Rafael", 2450},
	{"Bruno", 1650},
	{"Diego", 1500},
	{"Felipe", 1400},
	{"Gustavo", 1300},
	{"Henrique", 1200},
	{"Igor", 1100},
	{"Lucas", 1000},
	{"Matheus", 950},
	{"Pedro", 700},
	{"Thiago", 600},
}

// GenerateTestData creates demo players and one event with everyone enrolled,
// ready for a POST /events/:id/allocate call.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	players, err := f.generatePlayers()
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	event, err := f.generateEvent()
	if err != nil {
		return fmt.Errorf("failed to generate event: %w", err)
	}

	if err := f.enrollPlayers(event, players); err != nil {
		return fmt.Errorf("failed to enroll players: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d players and event %d (%s) with everyone enrolled", len(players), event.ID, event.Name)
	return nil
}

func (f *Fixtures) generatePlayers() ([]models.Player, error) {
	players := make([]models.Player, 0, len(seedPlayers))

	for _, seed := range seedPlayers {
		player := models.Player{
			Name:        seed.Name,
			SkillPoints: seed.Points,
			SkillTier:   utils.ReclassifyTier(seed.Points),
		}
		if err := f.db.Create(&player).Error; err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, nil
}

func (f *Fixtures) generateEvent() (*models.Event, error) {
	eventDate := time.Now().Add(48 * time.Hour)
	event := &models.Event{
		OrganizerID:         1,
		Name:                "Pelada de Quinta",
		Location:            "Quadra do Parque Central",
		EventDate:           &eventDate,
		PlayersPerTeam:      5,
		TotalMatchesPlanned: 10,
		Status:              models.EventStatusActive,
	}

	if err := f.db.Create(event).Error; err != nil {
		return nil, err
	}

	return event, nil
}

func (f *Fixtures) enrollPlayers(event *models.Event, players []models.Player) error {
	for _, player := range players {
		enrollment := models.Enrollment{
			EventID:  event.ID,
			PlayerID: player.ID,
		}
		if err := f.db.Create(&enrollment).Error; err != nil {
			return err
		}
	}
	return nil
}

// ClearAllData wipes every seeded table, children first.
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	tables := []string{
		"points_history",
		"performance_participations",
		"matches",
		"enrollments",
		"teams",
		"events",
		"players",
	}

	for _, table := range tables {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	log.Println("All fixture data cleared")
	return nil
}
