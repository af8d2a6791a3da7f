package conflict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHunkResolve(t *testing.T) {
	hunk := Hunk{Current: "current", Incoming: "incoming"}

	require.Equal(t, "current", hunk.Resolve(ResolutionCurrent))
	require.Equal(t, "incoming", hunk.Resolve(ResolutionIncoming))
	require.Equal(t, "current\nincoming", hunk.Resolve(ResolutionBoth))
}

func TestHunkResolveBoth_Whitespace(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		incoming string
		want     string
	}{
		{"plain", "a", "b", "a\nb"},
		{"spaces", "  a  ", "  b  ", "a\nb"},
		{"surrounding newlines", "\na\n", "\nb\n", "a\nb"},
		{"blank line padding", "\n\na\n\n", "b", "a\nb"},
		{"inner whitespace kept", "a  1", "b\tx", "a  1\nb\tx"},
		{"multi line sides", "a\nb", "c\nd", "a\nb\nc\nd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hunk := Hunk{Current: tt.current, Incoming: tt.incoming}
			require.Equal(t, tt.want, hunk.Resolve(ResolutionBoth))
		})
	}
}

func TestFileResolutionSlots(t *testing.T) {
	file := NewFile("test.txt", []Hunk{
		{Current: "a", Incoming: "b"},
		{Current: "c", Incoming: "d"},
		{Current: "e", Incoming: "f"},
	}, "")

	require.Equal(t, 3, file.TotalConflicts())
	require.Equal(t, 0, file.ResolvedCount())
	require.False(t, file.IsFullyResolved())

	file.SetResolution(0, ResolutionCurrent)
	file.SetResolution(2, ResolutionIncoming)
	require.Equal(t, 2, file.ResolvedCount())
	require.False(t, file.IsFullyResolved())

	file.SetResolution(1, ResolutionBoth)
	require.True(t, file.IsFullyResolved())

	r, ok := file.Resolution(1)
	require.True(t, ok)
	require.Equal(t, ResolutionBoth, r)
}

func TestFileClearResolution(t *testing.T) {
	file := NewFile("test.txt", []Hunk{
		{Current: "a", Incoming: "b"},
		{Current: "c", Incoming: "d"},
	}, "")

	file.SetResolution(0, ResolutionCurrent)
	file.SetResolution(1, ResolutionIncoming)
	require.True(t, file.IsFullyResolved())

	// Clearing one slot leaves the other untouched.
	file.ClearResolution(0)
	require.False(t, file.IsFullyResolved())
	require.Equal(t, 1, file.ResolvedCount())

	_, ok := file.Resolution(0)
	require.False(t, ok)
	r, ok := file.Resolution(1)
	require.True(t, ok)
	require.Equal(t, ResolutionIncoming, r)
}

func TestFileOutOfRangeIndices(t *testing.T) {
	file := NewFile("test.txt", []Hunk{{Current: "a", Incoming: "b"}}, "")

	// All silent no-ops.
	file.SetResolution(10, ResolutionCurrent)
	file.SetResolution(-1, ResolutionCurrent)
	file.ClearResolution(10)
	file.ClearResolution(-1)

	require.Equal(t, 0, file.ResolvedCount())
	_, ok := file.Resolution(10)
	require.False(t, ok)
}

func TestFileName(t *testing.T) {
	file := NewFile("/path/to/test.txt", nil, "")
	require.Equal(t, "test.txt", file.Name())
	require.True(t, file.IsFullyResolved()) // vacuously true with no hunks
}

func TestResolutionString(t *testing.T) {
	require.Equal(t, "Current (HEAD)", ResolutionCurrent.String())
	require.Equal(t, "Incoming", ResolutionIncoming.String())
	require.Equal(t, "Both", ResolutionBoth.String())
}
