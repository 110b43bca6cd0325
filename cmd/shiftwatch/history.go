package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/k1-c/shiftwatch"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if _, err := deps.Entities.FindEntityByRow(deps.Ctx, c.Row); err != nil {
		if shiftwatch.ErrorCode(err) == shiftwatch.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: row %d not found. Use 'shiftwatch list' to see available rows.\n", c.Row)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	observations, err := deps.Observations.FindObservations(deps.Ctx, shiftwatch.ObservationFilter{
		Row:   &c.Row,
		Limit: c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	if len(observations) == 0 {
		fmt.Fprintf(deps.Stdout, "No observations for row %d. Use 'shiftwatch run' to record one.\n", c.Row)
		return nil
	}

	for _, obs := range observations {
		observedAt := obs.ObservedAt
		if deps.Location != nil {
			observedAt = observedAt.In(deps.Location)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", observedAt.Format(time.DateTime), obs.Kind, obs.ContentHash)
		if obs.Schedule != "" {
			for _, line := range strings.Split(obs.Schedule, "\n") {
				fmt.Fprintf(deps.Stdout, "  %s\n", line)
			}
		}
	}

	return nil
}
