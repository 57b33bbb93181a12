package config

import "github.com/tslower/tslower/internal/logger"

type Options struct {
	// Patterns nested more deeply than this are treated as an internal error.
	// The parser bounds nesting already, so this only guards against trees
	// that were constructed by hand. Zero means there is no limit.
	MaxPatternDepth int

	// Debug messages are only generated when this is "logger.LevelDebug"
	LogLevel logger.LogLevel
}

func (options *Options) ShouldLogDebug() bool {
	return options.LogLevel != logger.LevelNone && options.LogLevel <= logger.LevelDebug
}
