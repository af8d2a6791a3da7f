package conflict

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	markerStart     = "<<<<<<<"
	markerSeparator = "======="
	markerEnd       = ">>>>>>>"
)

// ErrNoConflicts is returned when a file contains no conflict markers.
// A clean file is an error by policy: the session only ever parses files
// git already reported as conflicted, so a clean parse means the caller
// handed us the wrong file.
var ErrNoConflicts = errors.New("no conflict markers found")

// MalformedKind says which marker was missing from a conflict region.
type MalformedKind int

const (
	MissingSeparator MalformedKind = iota
	MissingEndMarker
)

func (k MalformedKind) String() string {
	if k == MissingSeparator {
		return "missing separator"
	}
	return "missing end marker"
}

// MalformedConflictError reports a conflict region that opened but never
// closed properly. Line is 1-based, pointing at the unmatched marker.
type MalformedConflictError struct {
	Kind MalformedKind
	Line int
}

func (e *MalformedConflictError) Error() string {
	return fmt.Sprintf("malformed conflict: %s for marker at line %d", e.Kind, e.Line)
}

// Parse scans text for conflict regions and returns one File holding
// every hunk in order of appearance. It is pure over the text; path is
// only recorded for identity and error messages.
//
// A region is an opening marker line, a separator line and an end marker
// line; lines strictly between them become the hunk's two sides. The
// scan resumes after each end marker, so hunks never overlap and arrive
// sorted by start line.
func Parse(path, text string) (*File, error) {
	lines := splitLines(text)
	var hunks []Hunk

	i := 0
	for i < len(lines) {
		if !strings.HasPrefix(lines[i], markerStart) {
			i++
			continue
		}

		start := i
		sep := scanFor(lines, start+1, markerSeparator)
		if sep < 0 {
			return nil, &MalformedConflictError{Kind: MissingSeparator, Line: start + 1}
		}
		end := scanFor(lines, sep+1, markerEnd)
		if end < 0 {
			return nil, &MalformedConflictError{Kind: MissingEndMarker, Line: sep + 1}
		}

		hunks = append(hunks, Hunk{
			Current:   strings.Join(lines[start+1:sep], "\n"),
			Incoming:  strings.Join(lines[sep+1:end], "\n"),
			StartLine: start,
			EndLine:   end,
		})
		i = end + 1
	}

	if len(hunks) == 0 {
		return nil, ErrNoConflicts
	}
	return NewFile(path, hunks, text), nil
}

// ParseFile reads path and parses its conflicts.
func ParseFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	file, err := Parse(path, string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file, nil
}

func scanFor(lines []string, from int, marker string) int {
	for j := from; j < len(lines); j++ {
		if strings.HasPrefix(lines[j], marker) {
			return j
		}
	}
	return -1
}

// splitLines splits on newlines without producing a phantom empty line
// for text that ends with one. Whether the text ended with a newline is
// recovered from the content itself when reconstructing.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
