package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grantlerdal/mend/internal/app"
	"github.com/grantlerdal/mend/internal/conflict"
	"github.com/grantlerdal/mend/internal/git"
)

func testModel(t *testing.T, text string) (Model, *conflict.File) {
	t.Helper()
	file, err := conflict.Parse("demo.go", text)
	require.NoError(t, err)
	state := app.New([]*conflict.File{file}, git.Rebase)
	m := NewModel(state, git.New("."), NewTheme("mocha"))
	m.width = 120
	m.height = 40
	return m, file
}

func TestRenderFileContent_UnresolvedShowsMarkers(t *testing.T) {
	m, file := testModel(t, "a\n<<<<<<< H\nX\n=======\nY\n>>>>>>> B\nb\n")

	content := m.renderFileContent(file)
	require.Contains(t, content, "<<<<<<< CURRENT (HEAD)")
	require.Contains(t, content, "=======")
	require.Contains(t, content, ">>>>>>> INCOMING")
	require.Contains(t, content, "X")
	require.Contains(t, content, "Y")
}

func TestRenderFileContent_ActiveConflictMarked(t *testing.T) {
	m, file := testModel(t, "<<<<<<< H\nX\n=======\nY\n>>>>>>> B\n")

	content := m.renderFileContent(file)
	require.Contains(t, content, "◀")
}

func TestRenderFileContent_ResolvedCollapses(t *testing.T) {
	m, file := testModel(t, "a\n<<<<<<< H\nX\n=======\nY\n>>>>>>> B\nb\n")
	file.SetResolution(0, conflict.ResolutionCurrent)

	content := m.renderFileContent(file)
	require.NotContains(t, content, "<<<<<<<")
	require.NotContains(t, content, ">>>>>>>")
	require.Contains(t, content, "X")
	require.NotContains(t, content, "Y")
}

func TestRenderFileContent_ResolvedBothKeepsBothSides(t *testing.T) {
	m, file := testModel(t, "<<<<<<< H\nX\n=======\nY\n>>>>>>> B\n")
	file.SetResolution(0, conflict.ResolutionBoth)

	content := m.renderFileContent(file)
	require.Contains(t, content, "X")
	require.Contains(t, content, "Y")
	require.NotContains(t, content, "=======")
}

func TestRenderFileContent_TrailingBlankLineRendered(t *testing.T) {
	m, file := testModel(t, "<<<<<<< H\nX\n=======\nY\n>>>>>>> B\nb\n\n")

	// The blank last line shows up as an empty final row.
	content := m.renderFileContent(file)
	require.True(t, strings.HasSuffix(content, "\n"))

	m2, file2 := testModel(t, "<<<<<<< H\nX\n=======\nY\n>>>>>>> B\nb\n")
	content2 := m2.renderFileContent(file2)
	require.False(t, strings.HasSuffix(content2, "\n"))
}

func TestSplitSide(t *testing.T) {
	require.Nil(t, splitSide(""))
	require.Equal(t, []string{"a"}, splitSide("a"))
	require.Equal(t, []string{"a", "b"}, splitSide("a\nb"))
}

func TestFooterFollowsFocusAndMode(t *testing.T) {
	m, _ := testModel(t, "<<<<<<< H\nX\n=======\nY\n>>>>>>> B\n")

	require.Contains(t, m.renderFooter(), "j/k=navigate")

	m.state.ToggleFocus()
	require.Contains(t, m.renderFooter(), "s=save")

	m.state.GoToRebaseActions()
	require.Contains(t, m.renderFooter(), "a=abort")
}

func TestViewRebaseActions(t *testing.T) {
	m, file := testModel(t, "<<<<<<< H\nX\n=======\nY\n>>>>>>> B\n")
	file.SetResolution(0, conflict.ResolutionIncoming)
	m.state.GoToRebaseActions()

	view := m.View()
	require.Contains(t, view, "All conflicts resolved")
	require.Contains(t, view, "continue the rebase")
}

func TestViewShowsStatusLine(t *testing.T) {
	m, _ := testModel(t, "<<<<<<< H\nX\n=======\nY\n>>>>>>> B\n")
	m.setStatus("something went wrong", true)

	require.Contains(t, m.View(), "something went wrong")
}

func TestFileListShowsProgress(t *testing.T) {
	m, file := testModel(t, "<<<<<<< H\nX\n=======\nY\n>>>>>>> B\n")

	list := m.renderFileList()
	require.Contains(t, list, "demo.go")
	require.Contains(t, list, "0/1")

	file.SetResolution(0, conflict.ResolutionCurrent)
	list = m.renderFileList()
	require.Contains(t, list, "1/1")
}

func TestHalfPageNeverZero(t *testing.T) {
	m, _ := testModel(t, "<<<<<<< H\nX\n=======\nY\n>>>>>>> B\n")
	m.height = 0
	require.GreaterOrEqual(t, m.halfPage(), 1)
}
