package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ============================================================
// Daily summary job
// ============================================================

// CronService runs scheduled jobs in UTC
type CronService struct {
	dashboard *DashboardService
	schedule  string
	cron      *cron.Cron
	now       func() time.Time
}

// NewCronService creates a scheduler. An empty schedule disables it.
func NewCronService(dashboard *DashboardService, schedule string) *CronService {
	return &CronService{
		dashboard: dashboard,
		schedule:  schedule,
		cron:      cron.New(cron.WithLocation(time.UTC)),
		now:       time.Now,
	}
}

// Start registers the jobs and launches the scheduler goroutine
func (s *CronService) Start() error {
	if s.schedule == "" {
		log.Println("⚠️  Daily summary job disabled (DAILY_SUMMARY_CRON is empty)")
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.logDailySummary); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("🚀 CronService started (daily summary: %q)", s.schedule)
	return nil
}

// Stop waits for a running job to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 CronService stopped")
}

// logDailySummary logs yesterday's counters
func (s *CronService) logDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := s.dashboard.Summary(ctx, s.now().UTC().AddDate(0, 0, -1))
	if err != nil {
		log.Printf("❌ Daily summary failed: %v", err)
		return
	}
	log.Printf("📊 Daily summary %s: present=%d visits=%d pjp=%d claims=%d employees=%d",
		summary.Date, summary.PresentToday, summary.VisitsToday, summary.PJPToday,
		summary.ClaimsToday, summary.TotalEmployees)
}
