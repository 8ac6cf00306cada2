package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/locrank"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := locrank.RunFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrank.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'locrank scan --save' to archive one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", r.ID, r.CreatedAt.Format(time.RFC3339), r.ContentHash, r.URL)
	}

	return nil
}
