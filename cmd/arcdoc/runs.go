package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/arcdoc"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", arcdoc.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived runs. Use 'arcdoc crawl' to create one.")
		return nil
	}

	for _, r := range runs {
		duration := "unfinished"
		if !r.FinishedAt.IsZero() {
			duration = r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String()
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  saved=%d failed=%d  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.Profile, r.PagesSaved, r.PagesFailed, duration)
	}

	return nil
}
