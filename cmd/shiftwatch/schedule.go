package main

import (
	"fmt"
	"strings"

	"github.com/adhocore/gronx"
	"github.com/k1-c/shiftwatch"
)

// Run executes the schedule command. A failed pass is logged and the
// schedule continues; only cancellation stops it.
func (c *ScheduleCmd) Run(deps *Dependencies) error {
	if err := validateCron(c.Cron); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	for {
		now := deps.now()
		next, err := gronx.NextTickAfter(c.Cron, now, false)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
			return err
		}
		deps.logger().Info("next pass", "at", next.Format("2006-01-02 15:04"))

		select {
		case <-deps.Ctx.Done():
			deps.logger().Info("schedule stopped")
			return nil
		case <-deps.after(next.Sub(now)):
		}

		if _, err := runPass(deps); err != nil {
			deps.logger().Warn("pass failed", "err", err)
		}

		if deps.Ctx.Err() != nil {
			deps.logger().Info("schedule stopped")
			return nil
		}
	}
}

// validateCron accepts exactly five fields: gronx would also take seconds.
func validateCron(expr string) error {
	if len(strings.Fields(expr)) != 5 || !gronx.IsValid(expr) {
		return shiftwatch.Errorf(shiftwatch.EINVALID,
			"invalid cron expression %q, expected 5-field format (minute hour day-of-month month day-of-week)", expr)
	}
	return nil
}
