package main

import (
	"fmt"

	"github.com/fwojciec/hentry"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return hentry.Errorf(hentry.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Entries.DeleteEntry(deps.Ctx, c.ID); err != nil {
		if hentry.ErrorCode(err) == hentry.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: entry %q not found. Use 'hentry list' to see saved entries.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", hentry.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted entry %q\n", c.ID)
	return nil
}
