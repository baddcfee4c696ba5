package cron

import (
	"log"

	"rei-da-quadra-api/services"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron              *cron.Cron
	eventCloseService *services.EventCloseService
}

func NewScheduler(eventCloseService *services.EventCloseService) *Scheduler {
	// Create cron with seconds precision and logging
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:              c,
		eventCloseService: eventCloseService,
	}
}

// Start initializes and starts all scheduled jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Close finished events at minute 0 of every hour
	_, err := s.cron.AddFunc("0 0 * * * *", s.runEventClose)
	if err != nil {
		log.Printf("Error scheduling event-close job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runEventClose() {
	log.Println("Running event-close job...")

	count, err := s.eventCloseService.GetCloseableEventsCount()
	if err != nil {
		log.Printf("Error checking closeable events count: %v", err)
		return
	}

	if count == 0 {
		log.Println("No events ready to close")
		return
	}

	log.Printf("Found %d event(s) ready to close", count)

	if err := s.eventCloseService.CloseFinishedEvents(); err != nil {
		log.Printf("Error during event close: %v", err)
		return
	}

	log.Println("Event-close job completed successfully")
}

// RunNow manually triggers the event-close job (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering event-close job...")
	s.runEventClose()
}
