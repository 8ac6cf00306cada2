package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locrank"
)

// Ensure LoggingRunService implements locrank.RunService.
var _ locrank.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging.
type LoggingRunService struct {
	next   locrank.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next locrank.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the new run.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *locrank.Run, html string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create run",
			"id", run.ID,
			"url", run.URL,
			"reports", len(run.Reports),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run, html)
}

// FindRunByID delegates to the wrapped service and logs at debug level.
func (s *LoggingRunService) FindRunByID(ctx context.Context, id string) (run *locrank.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find run",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRunByID(ctx, id)
}

// FindRuns delegates to the wrapped service and logs at debug level.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter locrank.RunFilter) (runs []*locrank.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find runs",
			"count", len(runs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}

// DeleteRun delegates to the wrapped service and logs the outcome.
func (s *LoggingRunService) DeleteRun(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete run",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRun(ctx, id)
}
