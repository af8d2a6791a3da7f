package conflict

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const tmpSuffix = ".mend.tmp"

// NotFullyResolvedError is returned when Apply is called before every
// hunk has a resolution. The UI should never let that happen; the
// applier re-validates anyway before touching the filesystem.
type NotFullyResolvedError struct {
	Resolved int
	Total    int
}

func (e *NotFullyResolvedError) Error() string {
	return fmt.Sprintf("not all conflicts are resolved (%d/%d)", e.Resolved, e.Total)
}

// ApplyError wraps an I/O failure during the final write with the path
// it happened on. The target file is never left partially written.
type ApplyError struct {
	Path string
	Err  error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("applying resolutions to %s: %v", e.Path, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Apply materializes the resolved file and writes it over f.Path.
//
// The write goes to a temporary file in the same directory followed by a
// rename, so a crash mid-write leaves the original untouched. The
// output ends with a newline exactly when the original content did.
func Apply(f *File) error {
	if !f.IsFullyResolved() {
		return &NotFullyResolvedError{
			Resolved: f.ResolvedCount(),
			Total:    f.TotalConflicts(),
		}
	}

	content := Resolved(f)

	dir := filepath.Dir(f.Path)
	tmp := filepath.Join(dir, "."+filepath.Base(f.Path)+tmpSuffix)

	mode := os.FileMode(0644)
	if info, err := os.Stat(f.Path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(tmp, []byte(content), mode); err != nil {
		os.Remove(tmp)
		return &ApplyError{Path: f.Path, Err: err}
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		os.Remove(tmp)
		return &ApplyError{Path: f.Path, Err: err}
	}
	return nil
}

// Resolved reconstructs the final text from the original content and the
// chosen resolutions without writing anything. It assumes every slot is
// set; unset slots would already have been rejected by Apply.
func Resolved(f *File) string {
	lines := splitLines(f.OriginalContent)
	var out []string

	next := 0
	for i, hunk := range f.Hunks {
		for next < hunk.StartLine && next < len(lines) {
			out = append(out, lines[next])
			next++
		}

		if r := f.Resolutions[i]; r != nil {
			text := hunk.Resolve(*r)
			if text != "" {
				out = append(out, strings.Split(text, "\n")...)
			}
		}

		// The marker lines and both original sides are discarded.
		next = hunk.EndLine + 1
	}
	for next < len(lines) {
		out = append(out, lines[next])
		next++
	}

	// The line model carries no newline state: a join ending in "\n"
	// means the last kept line was blank and still needs its own
	// terminator, so the append is unconditional.
	content := strings.Join(out, "\n")
	if strings.HasSuffix(f.OriginalContent, "\n") {
		content += "\n"
	}
	return content
}
