package main

import (
	"fmt"

	"github.com/fwojciec/arcdoc"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	if err := deps.Processor.Run(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", arcdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %s into %s\n", deps.DocsDir, deps.OutDir)
	return nil
}
