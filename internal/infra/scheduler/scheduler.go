package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is one poll cycle. A returned error is logged; it never stops the loop.
type Job func(ctx context.Context) error

// CycleScheduler runs a job, then sleeps until the schedule's next slot.
// Cycles never overlap: the next slot is computed only after the job returns.
type CycleScheduler struct {
	schedule cron.Schedule
	logger   *logrus.Entry
}

// NewCycleScheduler parses spec with the standard cron parser, so both
// "@every 10m" and five-field expressions are accepted.
func NewCycleScheduler(spec string, logger *logrus.Entry) (*CycleScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid poll schedule %q", spec)
	}
	return NewCycleSchedulerWithSchedule(schedule, logger), nil
}

func NewCycleSchedulerWithSchedule(schedule cron.Schedule, logger *logrus.Entry) *CycleScheduler {
	return &CycleScheduler{schedule: schedule, logger: logger}
}

// Run blocks until ctx is cancelled. The first cycle starts immediately.
func (s *CycleScheduler) Run(ctx context.Context, job Job) {
	s.logger.Info("Starting poll scheduler...")

	for {
		s.runJob(ctx, job)
		if ctx.Err() != nil {
			s.logger.Info("Poll scheduler stopped.")
			return
		}

		next := s.schedule.Next(time.Now())
		s.logger.WithField("next_run", next.Format(time.RFC3339)).Debug("Sleeping until next cycle")

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Poll scheduler stopped.")
			return
		case <-timer.C:
		}
	}
}

func (s *CycleScheduler) runJob(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.Newf("poll cycle panicked: %v", r)
			s.logger.WithField("stack", fmt.Sprintf("%+v", err)).Error("Poll cycle panicked")
		}
	}()

	if err := job(ctx); err != nil {
		s.logger.WithError(err).WithField("stack", fmt.Sprintf("%+v", err)).Error("Poll cycle failed with unexpected error")
	}
}
