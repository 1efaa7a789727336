package logger

import "go.uber.org/zap"

// LoggerConfig controls logger construction.
type LoggerConfig struct {
	// Debug enables human-readable development output at debug level.
	Debug bool
}

// NewLogger builds the zap logger used across the module. Production config
// unless Debug is set.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	if cfg != nil && cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
