package main

import (
	"fmt"

	"github.com/k1-c/shiftwatch"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	entity := &shiftwatch.Entity{
		Row:  c.Row,
		Name: c.Name,
		URL:  c.URL,
	}

	if err := deps.Entities.CreateEntity(deps.Ctx, entity); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added row %d\n", entity.Row)
	return nil
}
