package locrank

import (
	"context"
	"time"
)

// Run is an archived scan of one page.
type Run struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	ContentHash string    `json:"contentHash"`
	Reports     []*Report `json:"reports"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "run URL required")
	}
	for _, report := range r.Reports {
		if report == nil || report.Tag == "" {
			return Errorf(EINVALID, "run report tag required")
		}
	}
	return nil
}

// RunService represents a service for archiving scans.
type RunService interface {
	// CreateRun stores a run, assigning its ID, creation time and a
	// content hash of the scanned html.
	CreateRun(ctx context.Context, run *Run, html string) error

	// FindRunByID retrieves a run with all its reports.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	// Reports are not loaded.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run and its reports.
	// Returns ENOTFOUND if run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
