package main

import (
	"fmt"
	"os"

	"github.com/k1-c/shiftwatch"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	if c.Output == "" || c.Output == "-" {
		if _, err := deps.Exporter.Export(deps.Ctx, deps.Stdout); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
			return err
		}
		return nil
	}

	f, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	n, err := deps.Exporter.Export(deps.Ctx, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d events to %s\n", n, c.Output)
	return nil
}
