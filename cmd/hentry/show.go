package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/hentry"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	entry, err := deps.Entries.FindEntryByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hentry.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(storedJSON{
		entryJSON:   *newEntryJSON(&entry.Entry),
		SourceURL:   entry.SourceURL,
		ContentHash: entry.ContentHash,
		FetchedAt:   entry.FetchedAt.UTC().Format(time.RFC3339),
	})
}
