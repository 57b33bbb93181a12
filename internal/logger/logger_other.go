//go:build !darwin && !linux && !windows
// +build !darwin,!linux,!windows

package logger

import "os"

const SupportsColorEscapes = false

func GetTerminalInfo(*os.File) TerminalInfo {
	return TerminalInfo{}
}
