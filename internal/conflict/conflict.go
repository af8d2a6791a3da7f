// Package conflict holds the data model for merge conflicts found in a
// file, the parser that extracts them and the applier that writes the
// resolved file back to disk.
package conflict

import (
	"path/filepath"
	"strings"
)

// Resolution is the user's choice for a single conflict hunk.
type Resolution int

const (
	// ResolutionCurrent keeps the HEAD side of the hunk.
	ResolutionCurrent Resolution = iota
	// ResolutionIncoming keeps the side being merged or rebased in.
	ResolutionIncoming
	// ResolutionBoth keeps both sides, current first.
	ResolutionBoth
)

func (r Resolution) String() string {
	switch r {
	case ResolutionCurrent:
		return "Current (HEAD)"
	case ResolutionIncoming:
		return "Incoming"
	case ResolutionBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// Hunk is one conflict region in a file. StartLine and EndLine are
// 0-based indices of the opening and closing marker lines in the
// original file, inclusive.
type Hunk struct {
	Current   string
	Incoming  string
	StartLine int
	EndLine   int
}

// Resolve returns the text that replaces the hunk for the given choice.
// Both joins the two sides with a single newline, trimming surrounding
// whitespace from each side independently. The trim is lossy for
// deliberate blank-line padding; that is the documented contract, not
// something to infer around.
func (h Hunk) Resolve(r Resolution) string {
	switch r {
	case ResolutionCurrent:
		return h.Current
	case ResolutionIncoming:
		return h.Incoming
	case ResolutionBoth:
		return strings.TrimSpace(h.Current) + "\n" + strings.TrimSpace(h.Incoming)
	default:
		return h.Current
	}
}

// File is a single conflicted file: its hunks in order of appearance and
// a parallel slice of resolution choices, nil meaning undecided. Slot i
// always refers to Hunks[i].
type File struct {
	Path            string
	Hunks           []Hunk
	Resolutions     []*Resolution
	OriginalContent string
}

// NewFile builds a File with every resolution slot unset.
func NewFile(path string, hunks []Hunk, content string) *File {
	return &File{
		Path:            path,
		Hunks:           hunks,
		Resolutions:     make([]*Resolution, len(hunks)),
		OriginalContent: content,
	}
}

// IsFullyResolved reports whether every hunk has a resolution.
func (f *File) IsFullyResolved() bool {
	for _, r := range f.Resolutions {
		if r == nil {
			return false
		}
	}
	return true
}

// ResolvedCount returns how many hunks have been resolved.
func (f *File) ResolvedCount() int {
	count := 0
	for _, r := range f.Resolutions {
		if r != nil {
			count++
		}
	}
	return count
}

// TotalConflicts returns the number of hunks in the file.
func (f *File) TotalConflicts() int {
	return len(f.Hunks)
}

// SetResolution records the choice for hunk i. Out-of-range indices are
// ignored; they only arise from internally computed navigation state.
func (f *File) SetResolution(i int, r Resolution) {
	if i < 0 || i >= len(f.Resolutions) {
		return
	}
	f.Resolutions[i] = &r
}

// ClearResolution undoes the choice for hunk i, ignoring out-of-range
// indices the same way SetResolution does.
func (f *File) ClearResolution(i int) {
	if i < 0 || i >= len(f.Resolutions) {
		return
	}
	f.Resolutions[i] = nil
}

// Resolution returns the choice for hunk i, if one has been made.
func (f *File) Resolution(i int) (Resolution, bool) {
	if i < 0 || i >= len(f.Resolutions) || f.Resolutions[i] == nil {
		return 0, false
	}
	return *f.Resolutions[i], true
}

// Name returns the base name of the file for display.
func (f *File) Name() string {
	return filepath.Base(f.Path)
}
