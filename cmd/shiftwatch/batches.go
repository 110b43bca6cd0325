package main

import (
	"fmt"
	"time"

	"github.com/k1-c/shiftwatch"
)

// Run executes the batches command.
func (c *BatchesCmd) Run(deps *Dependencies) error {
	batches, err := deps.Batches.FindBatches(deps.Ctx, shiftwatch.BatchFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	if len(batches) == 0 {
		fmt.Fprintln(deps.Stdout, "No passes yet. Use 'shiftwatch run' to start one.")
		return nil
	}

	for _, b := range batches {
		startedAt := b.StartedAt
		if deps.Location != nil {
			startedAt = startedAt.In(deps.Location)
		}
		result := string(b.Result)
		if b.Result == shiftwatch.BatchPending {
			result = "RUNNING"
		}
		if style := b.Result.Style(); style != shiftwatch.StyleDefault {
			result += " [" + string(style) + "]"
		}
		line := fmt.Sprintf("%s  %s  %s", b.ID, startedAt.Format(time.DateTime), result)
		if b.Error != "" {
			line += "  " + b.Error
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}
