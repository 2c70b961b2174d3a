package slog

import (
	"log/slog"
	"time"

	"github.com/learnsearch/librarian"
)

// Ensure LoggingRegistry implements librarian.ReducerRegistry.
var _ librarian.ReducerRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ReducerRegistry with debug logging for generator
// detection.
type LoggingRegistry struct {
	next     librarian.ReducerRegistry
	detector librarian.GeneratorDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next librarian.ReducerRegistry, detector librarian.GeneratorDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(generator librarian.Generator) librarian.PageReducer {
	return r.next.Get(generator)
}

// GetForHTML detects the generator, logs it, and returns the appropriate
// reducer.
func (r *LoggingRegistry) GetForHTML(html string) librarian.PageReducer {
	begin := time.Now()
	generator := r.detector.Detect(html)
	name := string(generator)
	if generator == librarian.GeneratorUnknown {
		name = "(unknown)"
	}
	r.logger.Info("generator detection",
		"generator", name,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(generator librarian.Generator, reducer librarian.PageReducer) {
	r.next.Register(generator, reducer)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []librarian.Generator {
	return r.next.List()
}
