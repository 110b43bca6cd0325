package main

import (
	"fmt"

	"github.com/k1-c/shiftwatch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	entities, err := deps.Entities.FindEntities(deps.Ctx, shiftwatch.EntityFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	if len(entities) == 0 {
		fmt.Fprintln(deps.Stdout, "No rows found. Use 'shiftwatch add' to create one.")
		return nil
	}

	for _, e := range entities {
		next := e.NextStatus
		if e.NextStyle != shiftwatch.StyleDefault {
			next += " [" + string(e.NextStyle) + "]"
		}
		fmt.Fprintf(deps.Stdout, "%d  %s  %s  %s  %s\n", e.Row, orDash(e.Name), orDash(e.URL), orDash(e.PriorStatus), orDash(next))
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
