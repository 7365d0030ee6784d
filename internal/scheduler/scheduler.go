package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"inclusionnet/internal/jobs"
	"inclusionnet/internal/logger"
)

// Scheduler runs the housekeeping jobs on cron specs (seconds precision, UTC).
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner, requestExpirySpec string) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)
	s := &Scheduler{cron: c, jobs: jobRunner}

	if _, err := s.cron.AddFunc(requestExpirySpec, s.jobs.ExpireStaleRequests); err != nil {
		return nil, fmt.Errorf("register ExpireStaleRequests %q: %w", requestExpirySpec, err)
	}
	logger.Info("Cron jobs registered", "count", len(s.cron.Entries()))
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Cron scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// HasJobs reports whether any cron entry is registered.
func (s *Scheduler) HasJobs() bool {
	return len(s.cron.Entries()) > 0
}
