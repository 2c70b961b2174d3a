package main

import (
	"fmt"
	"strings"

	"github.com/learnsearch/librarian"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	filter := librarian.RecordFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.RootURL != "" {
		filter.RootURL = &c.RootURL
	}

	records, err := deps.Index.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", librarian.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'librarian index' to index content.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s\n", strings.Join(r.Headings(), " > "))
		fmt.Fprintf(deps.Stdout, "  %s\n", r.URL)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "  %s\n", r.Content)
		}
	}

	return nil
}
