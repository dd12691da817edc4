// Package tui renders simulation output for the terminal: the input
// pointer view, colored verdicts, timed trace playback, and the
// machine description pages.
package tui

import "strings"

// Pointer renders the input string with a caret under the symbol at
// position, e.g. for ("bab", 1):
//
//	b  a  b
//	   ^
//
// Symbols are spaced so the caret column lines up with the trace step
// indices the playback prints.
func Pointer(input string, position int) string {
	symbols := strings.Split(input, "")
	spaced := strings.Join(symbols, "  ")
	caret := strings.Repeat("   ", position) + "^"
	return spaced + "\n" + caret
}
