package main

import (
	"fmt"

	"github.com/learnsearch/librarian"
)

// Run executes the index tutorial command.
func (c *IndexTutorialCmd) Run(deps *Dependencies) error {
	result, err := deps.Indexer.IndexTutorial(deps.Ctx, c.URL, c.Priority)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", librarian.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %s\n", result.RootURL)
	fmt.Fprintf(deps.Stdout, "  saved:   %d\n", result.Saved)
	fmt.Fprintf(deps.Stdout, "  expired: %d\n", len(result.Expired))
	return nil
}

// Run executes the index guide command.
func (c *IndexGuideCmd) Run(deps *Dependencies) error {
	result, err := deps.Indexer.IndexJupyterBook(deps.Ctx, c.URL, c.Priority)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", librarian.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %s\n", result.RootURL)
	fmt.Fprintf(deps.Stdout, "  saved:   %d\n", result.Saved)
	fmt.Fprintf(deps.Stdout, "  failed:  %d\n", result.Failed)
	fmt.Fprintf(deps.Stdout, "  expired: %d\n", len(result.Expired))
	return nil
}
