package main

import (
	"fmt"

	"github.com/fwojciec/hentry"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := hentry.EntryFilter{Limit: c.Limit}
	if c.Author != "" {
		filter.Author = &c.Author
	}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hentry.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'hentry parse --save' to add some.")
		return nil
	}

	for _, e := range entries {
		date := "-"
		if e.Pubdate != nil {
			date = e.Pubdate.Format(hentry.PubdateLayout)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", e.ID, date, e.Title)
	}

	return nil
}
