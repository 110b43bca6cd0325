package main

import (
	"fmt"
	"regexp"

	"github.com/k1-c/shiftwatch"
)

// Run executes the import command. URLs that already have a row are left
// alone, so importing the same site twice adds nothing.
func (c *ImportCmd) Run(deps *Dependencies) error {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	urls, err := deps.Discoverer.Discover(deps.Ctx, c.Site, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}

	entities, err := deps.Entities.FindEntities(deps.Ctx, shiftwatch.EntityFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
		return err
	}
	known := make(map[string]bool, len(entities))
	for _, e := range entities {
		known[e.URL] = true
	}

	var added, present int
	for _, u := range urls {
		if known[u] {
			present++
			continue
		}
		known[u] = true

		if c.DryRun {
			fmt.Fprintln(deps.Stdout, u)
			added++
			continue
		}

		entity := &shiftwatch.Entity{URL: u}
		if err := deps.Entities.CreateEntity(deps.Ctx, entity); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", shiftwatch.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%d  %s\n", entity.Row, u)
		added++
	}

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "Would import %d rows (%d already present)\n", added, present)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Imported %d rows (%d already present)\n", added, present)
	return nil
}

func (c *ImportCmd) filter() (*shiftwatch.URLFilter, error) {
	filter := &shiftwatch.URLFilter{}
	if c.Include != "" {
		re, err := regexp.Compile(c.Include)
		if err != nil {
			return nil, shiftwatch.Errorf(shiftwatch.EINVALID, "invalid include pattern: %v", err)
		}
		filter.Include = re
	}
	if c.Exclude != "" {
		re, err := regexp.Compile(c.Exclude)
		if err != nil {
			return nil, shiftwatch.Errorf(shiftwatch.EINVALID, "invalid exclude pattern: %v", err)
		}
		filter.Exclude = re
	}
	return filter, nil
}
