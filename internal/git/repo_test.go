package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) *Repo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	mustGit(t, dir, "init")
	mustGit(t, dir, "config", "user.email", "test@example.com")
	mustGit(t, dir, "config", "user.name", "test")
	return New(dir)
}

func mustGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
}

// makeMergeConflict commits diverging versions of name on two branches
// and starts the merge that collides them.
func makeMergeConflict(t *testing.T, repo *Repo, name string) {
	t.Helper()
	dir := repo.WorkDir
	path := filepath.Join(dir, name)

	require.NoError(t, os.WriteFile(path, []byte("base\n"), 0644))
	mustGit(t, dir, "add", ".")
	mustGit(t, dir, "commit", "-m", "base")

	mustGit(t, dir, "checkout", "-b", "other")
	require.NoError(t, os.WriteFile(path, []byte("theirs\n"), 0644))
	mustGit(t, dir, "commit", "-am", "theirs")

	mustGit(t, dir, "checkout", "-")
	require.NoError(t, os.WriteFile(path, []byte("ours\n"), 0644))
	mustGit(t, dir, "commit", "-am", "ours")

	// The merge exits non-zero because of the conflict; that is the
	// state under test.
	merge := exec.Command("git", "merge", "other")
	merge.Dir = dir
	_ = merge.Run()
}

func TestConflictedFiles(t *testing.T) {
	repo := testRepo(t)
	makeMergeConflict(t, repo, "conflicted.txt")

	files, err := repo.ConflictedFiles()
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, filepath.Join(repo.WorkDir, "conflicted.txt"), files[0])
}

func TestConflictedFiles_NonASCIIPath(t *testing.T) {
	repo := testRepo(t)
	name := "grüße.txt"
	makeMergeConflict(t, repo, name)

	files, err := repo.ConflictedFiles()
	require.NoError(t, err)
	require.Len(t, files, 1)

	// The path comes back with its bytes literal, not C-escaped, so it
	// resolves on disk.
	require.Equal(t, filepath.Join(repo.WorkDir, name), files[0])
	_, statErr := os.Stat(files[0])
	require.NoError(t, statErr)
}

func TestDetectOperation_Merge(t *testing.T) {
	repo := testRepo(t)
	makeMergeConflict(t, repo, "conflicted.txt")

	op, err := repo.DetectOperation()
	require.NoError(t, err)
	require.Equal(t, Merge, op)
}

func TestDetectOperation_NothingInProgress(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.DetectOperation()
	require.ErrorIs(t, err, ErrNoOperation)
}
