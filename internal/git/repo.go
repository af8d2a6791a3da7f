// Package git shells out to the git binary for the operations the
// resolver needs around the core: detecting what is in progress,
// listing conflicted files, staging results and driving a rebase.
package git

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoOperation is returned when neither a merge nor a rebase is in
// progress in the repository.
var ErrNoOperation = errors.New("no merge or rebase operation in progress")

type Repo struct {
	WorkDir string
}

func New(workDir string) *Repo {
	return &Repo{WorkDir: workDir}
}

func (repo *Repo) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = repo.WorkDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}

// GitDir returns the absolute path of the repository's .git directory.
func (repo *Repo) GitDir() (string, error) {
	out, err := repo.run("rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// DetectOperation inspects the git directory for the state files that
// mark an in-progress merge or rebase. Rebases leave a rebase-merge or
// rebase-apply directory; an interactive rebase additionally drops an
// "interactive" file inside rebase-merge. A merge leaves MERGE_HEAD.
func (repo *Repo) DetectOperation() (Operation, error) {
	gitDir, err := repo.GitDir()
	if err != nil {
		return Merge, err
	}

	if dirExists(filepath.Join(gitDir, "rebase-merge")) {
		if fileExists(filepath.Join(gitDir, "rebase-merge", "interactive")) {
			return RebaseInteractive, nil
		}
		return Rebase, nil
	}
	if dirExists(filepath.Join(gitDir, "rebase-apply")) {
		return Rebase, nil
	}
	if fileExists(filepath.Join(gitDir, "MERGE_HEAD")) {
		return Merge, nil
	}
	return Merge, ErrNoOperation
}

// ConflictedFiles lists the paths of all files with unresolved merge
// conflicts, absolute against the repository work dir.
func (repo *Repo) ConflictedFiles() ([]string, error) {
	// quotePath=false keeps non-ASCII path bytes literal instead of
	// C-escaped, so the returned paths stat as-is.
	out, err := repo.run("-c", "core.quotePath=false", "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, err
	}

	var files []string
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Git still quotes paths holding control characters.
		if strings.HasPrefix(line, "\"") && strings.HasSuffix(line, "\"") {
			line = line[1 : len(line)-1]
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(repo.WorkDir, line)
		}
		files = append(files, line)
	}
	return files, nil
}

// StageFile marks a resolved file as staged.
func (repo *Repo) StageFile(path string) error {
	_, err := repo.run("add", "--", path)
	return err
}

func (repo *Repo) ContinueRebase() error {
	// GIT_EDITOR=true keeps rebase --continue from opening an editor
	// for the commit message inside the TUI's terminal.
	cmd := exec.Command("git", "rebase", "--continue")
	cmd.Dir = repo.WorkDir
	cmd.Env = append(os.Environ(), "GIT_EDITOR=true")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("git rebase --continue: %s", msg)
	}
	return nil
}

func (repo *Repo) AbortRebase() error {
	_, err := repo.run("rebase", "--abort")
	return err
}

func (repo *Repo) SkipRebase() error {
	_, err := repo.run("rebase", "--skip")
	return err
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
