package config

import (
	"testing"

	"github.com/tslower/tslower/internal/logger"
	"github.com/tslower/tslower/internal/test"
)

func TestShouldLogDebug(t *testing.T) {
	expected := map[logger.LogLevel]bool{
		logger.LevelNone:    false,
		logger.LevelDebug:   true,
		logger.LevelInfo:    false,
		logger.LevelWarning: false,
		logger.LevelError:   false,
		logger.LevelSilent:  false,
	}
	for level, shouldLog := range expected {
		options := Options{LogLevel: level}
		test.AssertEqual(t, options.ShouldLogDebug(), shouldLog)
	}
}
