package main

import (
	"fmt"

	"github.com/fwojciec/locrank"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return locrank.Errorf(locrank.EINVALID, "use --force to confirm deletion")
	}

	err := deps.Runs.DeleteRun(deps.Ctx, c.ID)
	if locrank.ErrorCode(err) == locrank.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'locrank runs' to see archived runs.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrank.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
	return nil
}
