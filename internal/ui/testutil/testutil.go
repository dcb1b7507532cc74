// Package testutil helps tests inspect rendered views.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes styling escapes from rendered output.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the width of s in terminal cells.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// PlainLines strips styling from a rendered view and splits it into lines,
// dropping trailing blank lines.
func PlainLines(view string) []string {
	lines := strings.Split(StripANSI(view), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Locate returns the row and cell column of the first occurrence of substr
// in a rendered view, or -1, -1. Columns count terminal cells so they can
// be fed back as mouse coordinates.
func Locate(view, substr string) (row, col int) {
	for i, line := range PlainLines(view) {
		if idx := strings.Index(line, substr); idx >= 0 {
			return i, ansi.StringWidth(line[:idx])
		}
	}
	return -1, -1
}

// FindLine returns the first line containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}
