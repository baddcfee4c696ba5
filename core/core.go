package core

import (
	"log"

	"rei-da-quadra-api/cron"
	"rei-da-quadra-api/handlers"
	"rei-da-quadra-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	PlayerHandler     *handlers.PlayerHandler
	PlayerService     *services.PlayerService
	EventHandler      *handlers.EventHandler
	EventService      *services.EventService
	TeamHandler       *handlers.TeamHandler
	TeamService       *services.TeamService
	MatchHandler      *handlers.MatchHandler
	MatchService      *services.MatchService
	PointsService     *services.PointsService
	AllocationService *services.AllocationService
	RotationService   *services.RotationService
	StatsService      *services.StatsService
	EventCloseService *services.EventCloseService
	Scheduler         *cron.Scheduler
	db                *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	playerService := services.NewPlayerService(db)
	pointsService := services.NewPointsService(db)
	playerHandler := handlers.NewPlayerHandler(playerService, pointsService)

	eventService := services.NewEventService(db)
	enrollmentService := services.NewEnrollmentService(db)
	allocationService := services.NewAllocationService(db)
	statsService := services.NewStatsService(db)
	eventHandler := handlers.NewEventHandler(eventService, enrollmentService, allocationService, statsService)

	teamService := services.NewTeamService(db)
	teamHandler := handlers.NewTeamHandler(teamService, enrollmentService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService)

	rotationService := services.NewRotationService(db)

	eventCloseService := services.NewEventCloseService(db)
	scheduler := cron.NewScheduler(eventCloseService)

	return &Module{
		PlayerHandler:     playerHandler,
		PlayerService:     playerService,
		EventHandler:      eventHandler,
		EventService:      eventService,
		TeamHandler:       teamHandler,
		TeamService:       teamService,
		MatchHandler:      matchHandler,
		MatchService:      matchService,
		PointsService:     pointsService,
		AllocationService: allocationService,
		RotationService:   rotationService,
		StatsService:      statsService,
		EventCloseService: eventCloseService,
		Scheduler:         scheduler,
		db:                db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	players := r.Group("/players")
	{
		players.POST("", m.PlayerHandler.CreatePlayer)
		players.GET("/top", m.PlayerHandler.GetTopPlayers)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.GET("/:id/points-history", m.PlayerHandler.GetPointsHistory)
		players.POST("/:id/actions", m.PlayerHandler.ApplyAction)
	}

	events := r.Group("/events")
	{
		events.GET("", m.EventHandler.ListEvents)
		events.POST("", m.EventHandler.CreateEvent)
		events.GET("/:id", m.EventHandler.GetEvent)
		events.GET("/:id/enrollments", m.EventHandler.GetEventEnrollments)
		events.GET("/:id/stats", m.EventHandler.GetEventStats)
		events.POST("/:id/allocate", m.EventHandler.AllocateTeams)
		events.GET("/:id/teams", m.TeamHandler.GetEventTeams)
		events.GET("/:id/waiting-team", m.TeamHandler.GetWaitingTeam)
		events.GET("/:id/matches", m.MatchHandler.GetEventMatches)
	}

	r.POST("/enrollments", m.EventHandler.EnrollPlayer)

	teams := r.Group("/teams")
	{
		teams.GET("/:id", m.TeamHandler.GetTeam)
		teams.GET("/:id/roster", m.TeamHandler.GetTeamRoster)
		teams.PATCH("/:id", m.TeamHandler.UpdateTeam)
	}

	matches := r.Group("/matches")
	{
		matches.POST("", m.MatchHandler.CreateMatch)
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.PATCH("/:id/start", m.MatchHandler.StartMatch)
		matches.POST("/:id/actions", m.MatchHandler.RecordAction)
		matches.DELETE("/:id/actions", m.MatchHandler.RemoveAction)
		matches.PATCH("/:id/finalize", m.MatchHandler.FinalizeMatch)
	}
}

// StartScheduler starts the cron scheduler for the event-close job
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}

// RunEventCloseNow manually triggers the event-close job (useful for testing)
func (m *Module) RunEventCloseNow() {
	log.Println("Manually triggering event close...")
	m.Scheduler.RunNow()
}
