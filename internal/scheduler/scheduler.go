package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RevenueSource is the part of the clinic store the closing job reads.
type RevenueSource interface {
	Revenue() models.Revenue
	Summary() models.Summary
}

// Scheduler menjalankan job periodik klinik, saat ini hanya tutup buku harian.
type Scheduler struct {
	cron     *cron.Cron
	source   RevenueSource
	schedule string
	log      *zap.SugaredLogger
}

func NewScheduler(source RevenueSource, schedule string, loc *time.Location, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		source:   source,
		schedule: schedule,
		log:      log,
	}
}

// Start registers the daily closing job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.dailyClosing); err != nil {
		return fmt.Errorf("register daily closing job %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.log.Infow("scheduler started", "daily_closing", s.schedule)
	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) dailyClosing() {
	r := s.source.Revenue()
	sum := s.source.Summary()
	s.log.Infow("daily closing",
		"revenue_today", r.Today,
		"revenue_total", r.Total,
		"cash", r.ByMethod.Cash,
		"transfer", r.ByMethod.Transfer,
		"visits", sum.Visits,
		"waiting", sum.Queues[models.StatusWaiting],
		"payment_pending", sum.Queues[models.StatusPaymentPending],
	)
	if open := sum.Queues[models.StatusPaymentPending]; open > 0 {
		s.log.Warnw("unpaid visits at closing", "count", open)
	}
}
