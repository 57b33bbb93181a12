package test

import (
	"fmt"
	"strings"

	"github.com/kylelemons/godebug/diff"
	"github.com/tslower/tslower/internal/logger"
)

// Diff returns a line-by-line diff where removed lines are prefixed with "-"
// and added lines with "+". Lines are colored when "color" is true.
func Diff(old string, new string, color bool) string {
	lines := strings.Split(diff.Diff(old, new), "\n")
	if !color {
		return strings.Join(lines, "\n")
	}

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "-"):
			lines[i] = fmt.Sprintf("%s%s%s", logger.TerminalColors.Red, line, logger.TerminalColors.Reset)
		case strings.HasPrefix(line, "+"):
			lines[i] = fmt.Sprintf("%s%s%s", logger.TerminalColors.Green, line, logger.TerminalColors.Reset)
		default:
			lines[i] = fmt.Sprintf("%s%s%s", logger.TerminalColors.Dim, line, logger.TerminalColors.Reset)
		}
	}
	return strings.Join(lines, "\n")
}
