package main

import (
	"fmt"

	"github.com/fwojciec/locrank"
)

// Run executes the scan command. Every report is built before anything is
// printed, so a failure leaves stdout empty.
func (c *ScanCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	if cfg == nil {
		var err error
		if cfg, err = c.Resolve(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locrank.ErrorMessage(err))
			return err
		}
	}

	page, err := deps.Source.Load(deps.Ctx, cfg.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrank.ErrorMessage(err))
		return err
	}

	ranker := locrank.NewRanker(locrank.DefaultRankTable())
	reports, err := locrank.BuildReports(page.Document, cfg.Tags, ranker)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrank.ErrorMessage(err))
		return err
	}

	logger := deps.logger()
	for _, r := range reports {
		if r.Replaced > 0 {
			logger.Warn("name collision", "tag", r.Tag, "replaced", r.Replaced)
		}
	}

	fmt.Fprint(deps.Stdout, locrank.FormatReports(reports))

	if !c.Save {
		return nil
	}

	run := &locrank.Run{URL: page.URL, Reports: reports}
	if err := deps.Runs.CreateRun(deps.Ctx, run, page.HTML); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrank.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stderr, "Saved run %s\n", run.ID)

	return nil
}
