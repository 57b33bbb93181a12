package test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/tslower/tslower/internal/logger"
)

func AssertEqual(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if observed != expected {
		t.Fatalf("%v != %v", observed, expected)
	}
}

func AssertEqualWithDiff(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	color := logger.SupportsColorEscapes && logger.GetTerminalInfo(os.Stderr).UseColorEscapes
	if message, ok := mismatchMessage(observed, expected, color); ok {
		t.Fatal(message)
	}
}

// Multi-line values are reported as a diff from "expected" to "observed"
func mismatchMessage(observed interface{}, expected interface{}, color bool) (string, bool) {
	if observed == expected {
		return "", false
	}
	stringA := fmt.Sprintf("%v", observed)
	stringB := fmt.Sprintf("%v", expected)
	if strings.Contains(stringA, "\n") || strings.Contains(stringB, "\n") {
		return "\n" + Diff(stringB, stringA, color), true
	}
	return fmt.Sprintf("%q != %q", stringA, stringB), true
}

// AssertPanics runs "fn" and checks that it panics with a message containing
// "substring". Internal errors are never recovered outside of tests.
func AssertPanics(t *testing.T, substring string, fn func()) {
	t.Helper()
	message, ok := func() (message string, ok bool) {
		defer func() {
			if r := recover(); r != nil {
				message = fmt.Sprint(r)
				ok = true
			}
		}()
		fn()
		return
	}()
	if !ok {
		t.Fatalf("Expected a panic containing %q", substring)
	}
	if !strings.Contains(message, substring) {
		t.Fatalf("Expected a panic containing %q but got %q", substring, message)
	}
}
