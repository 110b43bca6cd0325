package main

import (
	"fmt"

	"github.com/k1-c/shiftwatch"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return shiftwatch.Errorf(shiftwatch.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Entities.DeleteEntity(deps.Ctx, c.Row); err != nil {
		if shiftwatch.ErrorCode(err) == shiftwatch.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: row %d not found. Use 'shiftwatch list' to see available rows.\n", c.Row)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted row %d\n", c.Row)
	return nil
}
