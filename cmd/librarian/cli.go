package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/learnsearch/librarian"
	"github.com/learnsearch/librarian/crawl"
	"github.com/learnsearch/librarian/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Index   librarian.IndexService
	Indexer *crawl.Indexer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Index   IndexCmd   `cmd:"" help:"Index documentation into the search index"`
	Delete  DeleteCmd  `cmd:"" help:"Delete all records for a root URL"`
	Records RecordsCmd `cmd:"" help:"List records in the search index"`
}

// IndexCmd groups the indexing subcommands.
type IndexCmd struct {
	Tutorial IndexTutorialCmd `cmd:"" help:"Index a single tutorial page"`
	Guide    IndexGuideCmd    `cmd:"" help:"Index a JupyterBook guide site"`
}

// IndexTutorialCmd is the "index tutorial" subcommand.
type IndexTutorialCmd struct {
	URL      string `arg:"" help:"Tutorial page URL"`
	Priority int    `default:"0" help:"Result ordering priority (higher first)"`
}

// IndexGuideCmd is the "index guide" subcommand.
type IndexGuideCmd struct {
	URL         string  `arg:"" help:"Guide site root URL"`
	Priority    int     `default:"0" help:"Result ordering priority (higher first)"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent page download limit"`
	RPS         float64 `default:"1.0" help:"Per-domain requests per second"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	RootURL string `arg:"" help:"Root URL whose records to delete"`
	Force   bool   `help:"Confirm deletion"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	RootURL string `help:"Restrict to one root URL"`
	Limit   int    `default:"20" help:"Maximum records to list"`
	Offset  int    `help:"Records to skip"`
	Full    bool   `help:"Show record content"`
}
