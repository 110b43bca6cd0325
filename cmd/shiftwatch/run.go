package main

import (
	"context"
	"fmt"

	"github.com/k1-c/shiftwatch"
	"github.com/k1-c/shiftwatch/batch"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	_, err := runPass(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}
	return nil
}

// runPass performs one bookkept pass: the start is recorded before any
// fetch, and the result is recorded as SUCCESS or FAILURE afterwards.
func runPass(deps *Dependencies) (*batch.Result, error) {
	b, err := deps.Batches.StartBatch(deps.Ctx)
	if err != nil {
		return nil, fmt.Errorf("starting batch: %w", err)
	}

	result, runErr := deps.Runner.Run(deps.Ctx, b.ID)

	// Record the result even when the pass was interrupted.
	ctx := context.WithoutCancel(deps.Ctx)
	if runErr != nil {
		deps.logger().Error("batch failed", "batch", b.ID, "err", runErr)
		if _, err := deps.Batches.FinishBatch(ctx, b.ID, shiftwatch.BatchFailure, runErr.Error()); err != nil {
			deps.logger().Error("recording batch result", "batch", b.ID, "err", err)
		}
		return nil, runErr
	}

	if _, err := deps.Batches.FinishBatch(ctx, b.ID, shiftwatch.BatchSuccess, ""); err != nil {
		return nil, fmt.Errorf("finishing batch: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Processed %d rows (%d skipped, %d failed, %d changed)\n",
		result.Processed, result.Skipped, result.Failed(), result.Changed)
	return result, nil
}
