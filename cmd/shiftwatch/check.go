package main

import (
	"fmt"

	"github.com/k1-c/shiftwatch"
)

// Run executes the check command. Nothing is written to the row store.
func (c *CheckCmd) Run(deps *Dependencies) error {
	entity := &shiftwatch.Entity{URL: c.URL}
	if err := entity.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	outcome := deps.Fetcher.Fetch(deps.Ctx, c.URL)

	fmt.Fprintf(deps.Stdout, "outcome: %s\n", outcome.Kind)
	if outcome.Err != nil {
		fmt.Fprintf(deps.Stdout, "cause: %s\n", outcome.Err)
	}
	for _, r := range outcome.Records {
		fmt.Fprintf(deps.Stdout, "  %s\n", r)
	}

	writes := shiftwatch.Reconcile(outcome, deps.today())
	if writes.Prior != nil {
		fmt.Fprintf(deps.Stdout, "prior: %s\n", writes.Prior.Value)
	}
	fmt.Fprintf(deps.Stdout, "next: %s\n", writes.Next.Value)
	if color := writes.Next.Style.Color(); color != "" {
		fmt.Fprintf(deps.Stdout, "style: %s (%s)\n", writes.Next.Style, color)
	}

	return nil
}
