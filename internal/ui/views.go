package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/grantlerdal/mend/internal/app"
	"github.com/grantlerdal/mend/internal/conflict"
)

func (m Model) View() string {
	if m.state.ShouldQuit {
		return ""
	}

	var body string
	switch m.state.View.Mode {
	case app.ModeRebaseActions:
		body = m.renderRebaseActions()
	default:
		body = m.renderSplitPane()
	}

	sections := []string{m.renderHeader(), body, m.renderFooter()}
	if m.status != "" {
		style := m.theme.Help
		if m.statusErr {
			style = m.theme.Error
		}
		sections = append(sections, style.Render(m.status))
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	resolved := 0
	for _, f := range m.state.Files {
		if f.IsFullyResolved() {
			resolved++
		}
	}
	title := m.theme.Title.Render("mend")
	info := m.theme.HeaderDim.Render(fmt.Sprintf("%s  •  %d/%d files resolved",
		m.state.Operation, resolved, len(m.state.Files)))
	return title + "  " + info
}

func (m Model) renderSplitPane() string {
	left := m.renderFileList()
	right := m.renderCodePane()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m Model) renderFileList() string {
	var b strings.Builder

	label := " Files"
	style := m.theme.HeaderDim
	if m.state.Focus == app.FocusFileList {
		label = "▎FILES"
		style = m.theme.Header
	}
	b.WriteString(style.Render(label) + "\n")

	for i, file := range m.state.Files {
		icon := "○"
		iconStyle := m.theme.Unselected
		if file.IsFullyResolved() {
			icon = "✓"
			iconStyle = m.theme.Resolved
		}

		size := humanize.Bytes(uint64(len(file.OriginalContent)))
		line := fmt.Sprintf("%s %s  %d/%d  %s",
			icon, file.Name(), file.ResolvedCount(), file.TotalConflicts(), size)

		if i == m.state.SelectedFile {
			b.WriteString(m.theme.Selected.Render(line) + "\n")
		} else {
			rest := strings.TrimPrefix(line, icon)
			b.WriteString(iconStyle.Render(icon) + m.theme.Unselected.Render(rest) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(m.fileListWidth()).
		Height(m.contentHeight()).
		Render(b.String())
}

func (m Model) renderCodePane() string {
	file := m.state.CurrentFile()
	if file == nil {
		return m.theme.HeaderDim.Render("No file selected")
	}

	label := " Code"
	style := m.theme.HeaderDim
	if m.state.Focus == app.FocusCodeView {
		label = "▎CODE"
		style = m.theme.Header
	}
	header := style.Render(fmt.Sprintf("%s  •  %s  •  Conflict %d/%d  •  Resolved %d/%d",
		label, file.Name(),
		m.state.View.ConflictIndex+1, file.TotalConflicts(),
		file.ResolvedCount(), file.TotalConflicts()))

	content := m.renderFileContent(file)

	vp := m.viewport
	vp.Width = m.codePaneWidth()
	vp.Height = m.contentHeight() - 1
	vp.SetContent(content)
	vp.SetYOffset(m.state.ScrollOffset)

	return header + "\n" + vp.View()
}

// renderFileContent shows the whole file. Unresolved hunks keep their
// marker lines with both sides highlighted; resolved hunks collapse to
// the chosen text.
func (m Model) renderFileContent(file *conflict.File) string {
	lines := strings.Split(strings.TrimSuffix(file.OriginalContent, "\n"), "\n")
	var out []string

	idx := 0
	for idx < len(lines) {
		hunkAt := -1
		for i, h := range file.Hunks {
			if h.StartLine == idx {
				hunkAt = i
				break
			}
		}

		if hunkAt < 0 {
			out = append(out, lines[idx])
			idx++
			continue
		}

		hunk := file.Hunks[hunkAt]
		resolution, resolved := file.Resolution(hunkAt)
		active := hunkAt == m.state.View.ConflictIndex

		if resolved {
			for _, l := range splitSide(hunk.Resolve(resolution)) {
				out = append(out, m.theme.Resolved.Render(l))
			}
			idx = hunk.EndLine + 1
			continue
		}

		start := "<<<<<<< CURRENT (HEAD)"
		end := ">>>>>>> INCOMING"
		if active {
			start += " ◀"
			end += " ◀"
		}
		out = append(out, m.theme.Marker.Render(start))
		for _, l := range splitSide(hunk.Current) {
			out = append(out, m.theme.CurrentBg.Render(l))
		}
		out = append(out, m.theme.Marker.Render("======="))
		for _, l := range splitSide(hunk.Incoming) {
			out = append(out, m.theme.IncomingBg.Render(l))
		}
		out = append(out, m.theme.Marker.Render(end))
		idx = hunk.EndLine + 1
	}

	return strings.Join(out, "\n")
}

// splitSide splits one side of a hunk into lines, treating an empty side
// as no lines at all rather than a single blank one.
func splitSide(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func (m Model) renderRebaseActions() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("All conflicts resolved") + "\n\n")
	b.WriteString(m.theme.HeaderDim.Render(fmt.Sprintf("Operation: %s", m.state.Operation)) + "\n\n")
	b.WriteString(m.theme.Action.Render("c") + m.theme.Unselected.Render("  continue the rebase") + "\n")
	b.WriteString(m.theme.Action.Render("s") + m.theme.Unselected.Render("  skip the current commit") + "\n")
	b.WriteString(m.theme.Action.Render("a") + m.theme.Unselected.Render("  abort the rebase") + "\n")
	b.WriteString(m.theme.Action.Render("q") + m.theme.Unselected.Render("  quit without further action") + "\n")

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.contentHeight()).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (m Model) renderFooter() string {
	if m.state.View.Mode == app.ModeRebaseActions {
		return m.theme.Help.Render("c=continue  s=skip  a=abort  q=quit")
	}
	if m.state.Focus == app.FocusCodeView {
		return m.theme.Help.Render(
			"j/k=scroll  ctrl+d/u=page  n/p=conflict  c=current  i=incoming  b=both  u=undo  s=save  tab=files  q=quit")
	}
	return m.theme.Help.Render("j/k=navigate  g/G=top/bottom  enter/tab=code  q=quit")
}
