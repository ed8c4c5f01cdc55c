// Package logging builds the zap logger shared by the CLI and HTTP server.
package logging

import (
	"fmt"

	"github.com/ukaji3/wipreport-go/internal/config"
	"go.uber.org/zap"
)

// New creates a logger from cfg. Production loggers write JSON; development
// loggers write human-readable console output.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
