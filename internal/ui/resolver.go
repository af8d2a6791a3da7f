// Package ui renders the resolution session and translates key events
// into state machine transitions. One key event causes at most one
// transition; everything the update loop touches lives in the model.
package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grantlerdal/mend/internal/app"
	"github.com/grantlerdal/mend/internal/conflict"
	"github.com/grantlerdal/mend/internal/git"
)

type Model struct {
	state     *app.State
	repo      *git.Repo
	theme     Theme
	viewport  viewport.Model
	width     int
	height    int
	status    string
	statusErr bool
}

func NewModel(state *app.State, repo *git.Repo, theme Theme) Model {
	return Model{
		state:    state,
		repo:     repo,
		theme:    theme,
		viewport: viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.codePaneWidth()
		m.viewport.Height = m.contentHeight()

	case tea.KeyMsg:
		switch m.state.View.Mode {
		case app.ModeSplitPane:
			return m.updateSplitPane(msg)
		case app.ModeRebaseActions:
			return m.updateRebaseActions(msg)
		}
	}
	return m, nil
}

func (m Model) updateSplitPane(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false

	switch msg.String() {
	case "q", "ctrl+c":
		m.state.Quit()
		return m, tea.Quit

	case "tab":
		m.state.ToggleFocus()
		return m, nil
	}

	if m.state.Focus == app.FocusFileList {
		return m.updateFileListKeys(msg)
	}
	return m.updateCodeViewKeys(msg)
}

func (m Model) updateFileListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.state.MoveSelectionDown()
	case "k", "up":
		m.state.MoveSelectionUp()
	case "g":
		m.state.SelectFirstFile()
	case "G":
		m.state.SelectLastFile()
	case "enter":
		m.state.ToggleFocus()
	}
	return m, nil
}

func (m Model) updateCodeViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.state.ScrollDown(1)
	case "k", "up":
		m.state.ScrollUp(1)
	case "ctrl+d", "pgdn":
		m.state.ScrollDown(m.halfPage())
	case "ctrl+u", "pgup":
		m.state.ScrollUp(m.halfPage())
	case "n":
		m.state.NextConflict()
	case "p":
		m.state.PreviousConflict()
	case "c":
		m.state.SetCurrentResolution(conflict.ResolutionCurrent)
	case "i":
		m.state.SetCurrentResolution(conflict.ResolutionIncoming)
	case "b":
		m.state.SetCurrentResolution(conflict.ResolutionBoth)
	case "u":
		m.state.ClearCurrentResolution()
	case "s":
		m.saveCurrentFile()
	}
	return m, nil
}

// saveCurrentFile applies the resolutions of the selected file, stages
// the result and, when that completed the last file of a rebase, moves
// to the action screen. Apply failure leaves the view mode untouched.
func (m *Model) saveCurrentFile() {
	file := m.state.CurrentFile()
	if file == nil {
		return
	}
	if !file.IsFullyResolved() {
		m.setStatus(fmt.Sprintf("resolve all conflicts first (%d/%d)",
			file.ResolvedCount(), file.TotalConflicts()), true)
		return
	}

	if err := conflict.Apply(file); err != nil {
		slog.Error("apply failed", "path", file.Path, "err", err)
		m.setStatus(err.Error(), true)
		return
	}
	slog.Info("applied resolutions", "path", file.Path, "conflicts", file.TotalConflicts())

	if err := m.repo.StageFile(file.Path); err != nil {
		slog.Error("stage failed", "path", file.Path, "err", err)
		m.setStatus(fmt.Sprintf("saved, but staging failed: %v", err), true)
	} else {
		m.setStatus(fmt.Sprintf("saved and staged %s", file.Name()), false)
	}

	if m.state.AllFilesResolved() && m.state.Operation.IsRebase() {
		m.state.GoToRebaseActions()
	}
}

func (m Model) updateRebaseActions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.state.Quit()
		return m, tea.Quit

	case "c":
		if err := m.repo.ContinueRebase(); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.state.Quit()
		return m, tea.Quit

	case "a":
		if err := m.repo.AbortRebase(); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.state.Quit()
		return m, tea.Quit

	case "s":
		if err := m.repo.SkipRebase(); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.state.Quit()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) halfPage() int {
	h := m.contentHeight() / 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) fileListWidth() int {
	w := m.width * 3 / 10
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) codePaneWidth() int {
	w := m.width - m.fileListWidth() - 1
	if w < 0 {
		w = 0
	}
	return w
}

// contentHeight leaves room for the header, footer and status line.
func (m Model) contentHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

// Run starts the TUI and blocks until the session ends.
func Run(state *app.State, repo *git.Repo, theme Theme) error {
	m := NewModel(state, repo, theme)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
