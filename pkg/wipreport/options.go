// Package wipreport builds the Unbilled WIP workbook from an uploaded
// timesheet export.
package wipreport

import (
	"time"

	"go.uber.org/zap"
)

// Options configures report generation.
type Options struct {
	// Logger receives progress and per-row skip events. Nil disables logging.
	Logger *zap.Logger
	// Now returns the generation time used in the file name.
	// If nil, defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Now:    time.Now,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
