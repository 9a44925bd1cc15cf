package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines in a diff.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// GenerateUnifiedDiff compares expected and actual line by line and renders
// the result in unified diff form. Identical content yields an empty string.
// Diffs longer than 10,000 lines are truncated with a marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	out, _ := Unified(expected, actual, expectedLabel, actualLabel)
	return out
}

// Unified is GenerateUnifiedDiff that also reports line statistics.
func Unified(expected, actual []byte, expectedLabel, actualLabel string) (string, Stats) {
	if bytes.Equal(expected, actual) {
		return "", Stats{}
	}

	dmp := diffmatchpatch.New()
	expectedChars, actualChars, lineArray := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffMain(expectedChars, actualChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(expected), countLines(actual))

	var stats Stats
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")

			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n", stats
	}

	return result, stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(content []byte) int {
	return len(splitLines(string(content)))
}
