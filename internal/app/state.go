// Package app holds the navigation state machine for a resolution
// session. It is passive: the TUI layer feeds it one transition per key
// event and renders whatever it holds afterwards. Every transition is a
// total function that clamps or no-ops instead of panicking, because the
// indices involved only ever come from earlier transitions.
package app

import (
	"github.com/grantlerdal/mend/internal/conflict"
	"github.com/grantlerdal/mend/internal/git"
)

// Mode discriminates the two screens of the session.
type Mode int

const (
	// ModeSplitPane shows the file list next to the conflict viewer.
	ModeSplitPane Mode = iota
	// ModeRebaseActions offers continue/abort/skip after everything is
	// resolved during a rebase.
	ModeRebaseActions
)

// ViewMode is the current screen plus its per-screen data. ConflictIndex
// is only meaningful in ModeSplitPane.
type ViewMode struct {
	Mode          Mode
	ConflictIndex int
}

// PaneFocus selects which pane of the split view receives navigation
// keys.
type PaneFocus int

const (
	FocusFileList PaneFocus = iota
	FocusCodeView
)

// State is the whole navigation state of a session. It has exactly one
// owner, the TUI update loop, for its entire lifetime.
type State struct {
	Files        []*conflict.File
	View         ViewMode
	Focus        PaneFocus
	SelectedFile int
	ScrollOffset int
	Operation    git.Operation
	ShouldQuit   bool
}

// New builds the initial state: split pane on the first file's first
// conflict, focus on the file list.
func New(files []*conflict.File, op git.Operation) *State {
	return &State{
		Files:     files,
		View:      ViewMode{Mode: ModeSplitPane},
		Focus:     FocusFileList,
		Operation: op,
	}
}

// MoveSelectionUp moves the file selection up one entry. Only valid with
// the file list focused; clamps at the top. Changing files restarts the
// viewer at the first conflict, top of scroll.
func (s *State) MoveSelectionUp() {
	if s.View.Mode != ModeSplitPane || s.Focus != FocusFileList {
		return
	}
	if s.SelectedFile > 0 {
		s.SelectedFile--
		s.View.ConflictIndex = 0
		s.ResetScroll()
	}
}

// MoveSelectionDown is the downward counterpart of MoveSelectionUp.
func (s *State) MoveSelectionDown() {
	if s.View.Mode != ModeSplitPane || s.Focus != FocusFileList {
		return
	}
	if s.SelectedFile < len(s.Files)-1 {
		s.SelectedFile++
		s.View.ConflictIndex = 0
		s.ResetScroll()
	}
}

// SelectFirstFile jumps the selection to the top of the list.
func (s *State) SelectFirstFile() {
	if s.View.Mode != ModeSplitPane || s.Focus != FocusFileList {
		return
	}
	if s.SelectedFile != 0 {
		s.SelectedFile = 0
		s.View.ConflictIndex = 0
		s.ResetScroll()
	}
}

// SelectLastFile jumps the selection to the bottom of the list.
func (s *State) SelectLastFile() {
	if s.View.Mode != ModeSplitPane || s.Focus != FocusFileList {
		return
	}
	last := len(s.Files) - 1
	if last >= 0 && s.SelectedFile != last {
		s.SelectedFile = last
		s.View.ConflictIndex = 0
		s.ResetScroll()
	}
}

// ToggleFocus flips between the file list and the code view. It is
// unconditional; focus is only consulted by split-pane dispatch, so the
// flip is inert on the action screen.
func (s *State) ToggleFocus() {
	if s.Focus == FocusFileList {
		s.Focus = FocusCodeView
	} else {
		s.Focus = FocusFileList
	}
}

// NextConflict advances the viewer to the next conflict of the selected
// file, clamping at the last one. Only valid with the code view focused.
func (s *State) NextConflict() {
	if s.View.Mode != ModeSplitPane || s.Focus != FocusCodeView {
		return
	}
	file := s.CurrentFile()
	if file == nil {
		return
	}
	if s.View.ConflictIndex < file.TotalConflicts()-1 {
		s.View.ConflictIndex++
	}
}

// PreviousConflict is the backward counterpart of NextConflict.
func (s *State) PreviousConflict() {
	if s.View.Mode != ModeSplitPane || s.Focus != FocusCodeView {
		return
	}
	if s.View.ConflictIndex > 0 {
		s.View.ConflictIndex--
	}
}

// SetCurrentResolution records a choice for the conflict under the
// cursor. Only valid with the code view focused.
func (s *State) SetCurrentResolution(r conflict.Resolution) {
	if s.View.Mode != ModeSplitPane || s.Focus != FocusCodeView {
		return
	}
	if file := s.CurrentFile(); file != nil {
		file.SetResolution(s.View.ConflictIndex, r)
	}
}

// ClearCurrentResolution undoes the choice for the conflict under the
// cursor.
func (s *State) ClearCurrentResolution() {
	if s.View.Mode != ModeSplitPane || s.Focus != FocusCodeView {
		return
	}
	if file := s.CurrentFile(); file != nil {
		file.ClearResolution(s.View.ConflictIndex)
	}
}

// ScrollUp decrements the scroll offset, saturating at zero.
func (s *State) ScrollUp(lines int) {
	s.ScrollOffset -= lines
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// ScrollDown increments the scroll offset. The view layer clamps against
// content height at render time.
func (s *State) ScrollDown(lines int) {
	s.ScrollOffset += lines
}

// ResetScroll returns the viewer to the top of the file.
func (s *State) ResetScroll() {
	s.ScrollOffset = 0
}

// GoToRebaseActions switches to the post-resolution action screen. The
// caller takes this transition only after observing a successful apply
// with every file resolved during a rebase.
func (s *State) GoToRebaseActions() {
	s.View = ViewMode{Mode: ModeRebaseActions}
}

// Quit marks the session for termination; the control loop checks the
// flag each iteration.
func (s *State) Quit() {
	s.ShouldQuit = true
}

// CurrentFile returns the selected file, or nil when the selection is
// out of range.
func (s *State) CurrentFile() *conflict.File {
	if s.SelectedFile < 0 || s.SelectedFile >= len(s.Files) {
		return nil
	}
	return s.Files[s.SelectedFile]
}

// AllFilesResolved reports whether every file in the session is fully
// resolved.
func (s *State) AllFilesResolved() bool {
	for _, f := range s.Files {
		if !f.IsFullyResolved() {
			return false
		}
	}
	return true
}
