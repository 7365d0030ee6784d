package jobs

import (
	"context"
	"time"

	"inclusionnet/internal/logger"
)

// RequestExpirer cancels PENDING loan requests older than a cutoff.
type RequestExpirer interface {
	ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

// JobRunner holds the dependencies of the scheduled housekeeping jobs.
type JobRunner struct {
	requests      RequestExpirer
	requestExpiry time.Duration
	timeout       time.Duration
}

func NewJobRunner(requests RequestExpirer, requestExpiry time.Duration) *JobRunner {
	return &JobRunner{requests: requests, requestExpiry: requestExpiry, timeout: time.Minute}
}

// runWithRecovery keeps a panicking job from taking the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	jobFunc(ctx)
	logger.Info("Job completed", "job", jobName)
}

// ExpireStaleRequests cancels loan requests left PENDING past the expiry window.
func (jr *JobRunner) ExpireStaleRequests() {
	jr.runWithRecovery("ExpireStaleRequests", func(ctx context.Context) {
		n, err := jr.requests.ExpireStale(ctx, jr.requestExpiry)
		if err != nil {
			logger.Error("Failed to expire stale loan requests", "error", err)
			return
		}
		logger.Info("Expired stale loan requests", "count", n, "older_than", jr.requestExpiry.String())
	})
}
