// Package logging builds the zap loggers used by the host tools.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New returns a logger at level. Format "json" selects the production
// encoder; "console" the development one.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = lvl

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}

// WithSession tags log with a fresh session id and returns both.
func WithSession(log *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	return log.With(zap.String("session", id)), id
}
