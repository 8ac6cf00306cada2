package main

import (
	"fmt"

	"github.com/fwojciec/locrank"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if locrank.ErrorCode(err) == locrank.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'locrank runs' to see archived runs.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrank.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, locrank.FormatReports(run.Reports))
	return nil
}
