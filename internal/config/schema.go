package config

import (
	"log/slog"
	"strings"
)

// Config holds tablex configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Log    LogCfg    `mapstructure:"log" yaml:"log"`
	Detect DetectCfg `mapstructure:"detect" yaml:"detect"`
}

// LogCfg controls diagnostic logging. Diagnostics share standard error
// with the failure payload, so the default level keeps the logger quiet
// unless a caller opts in.
type LogCfg struct {
	Level  string `mapstructure:"level" yaml:"level"`   // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// DetectCfg tunes the table detection capability.
type DetectCfg struct {
	MinRows            int     `mapstructure:"min_rows" yaml:"min_rows"`                       // Minimum rows for a candidate table
	MinCols            int     `mapstructure:"min_cols" yaml:"min_cols"`                       // Minimum columns for a candidate table
	MinConfidence      float64 `mapstructure:"min_confidence" yaml:"min_confidence"`           // Reject candidates scoring below this (0..1)
	MaxCellGap         float64 `mapstructure:"max_cell_gap" yaml:"max_cell_gap"`               // Point gap tolerated between fragments in one cell
	AlignmentTolerance float64 `mapstructure:"alignment_tolerance" yaml:"alignment_tolerance"` // Point tolerance for column alignment
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogCfg{
			Level:  "error",
			Format: "text",
		},
		Detect: DetectCfg{
			MinRows:            2,
			MinCols:            2,
			MinConfidence:      0.5,
			MaxCellGap:         5.0,
			AlignmentTolerance: 2.0,
		},
	}
}

// SlogLevel maps the configured level name onto a slog.Level. Unknown
// names fall back to error.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
