package main

import (
	"fmt"

	"github.com/learnsearch/librarian"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return librarian.Errorf(librarian.EINVALID, "use --force to confirm deletion")
	}

	deleted, err := deps.Index.DeleteByRootURL(deps.Ctx, c.RootURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", librarian.ErrorMessage(err))
		return err
	}

	if len(deleted) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no records found for %q. Use 'librarian records' to see indexed content.\n", c.RootURL)
		return librarian.Errorf(librarian.ENOTFOUND, "no records found for %q", c.RootURL)
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d records for %s\n", len(deleted), c.RootURL)
	return nil
}
