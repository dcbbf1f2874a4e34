package git

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// gitEnvPrefixes lists git environment variables stripped from child
// processes. When gig runs inside a git hook, GIT_DIR and friends point at
// the hook's repository rather than the one in dir.
var gitEnvPrefixes = []string{
	"GIT_DIR=",
	"GIT_WORK_TREE=",
	"GIT_INDEX_FILE=",
	"GIT_OBJECT_DIRECTORY=",
	"GIT_ALTERNATE_OBJECT_DIRECTORIES=",
	"GIT_COMMON_DIR=",
}

// Run executes a git command in the given directory.
func Run(dir string, args ...string) (string, error) {
	cmd := command(dir, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

func command(dir string, args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(cleanGitEnv(os.Environ()), "GIT_TERMINAL_PROMPT=0")
	return cmd
}

// cleanGitEnv returns a copy of environ with hook-inherited git variables removed.
func cleanGitEnv(environ []string) []string {
	result := make([]string, 0, len(environ))
	for _, e := range environ {
		keep := true
		for _, prefix := range gitEnvPrefixes {
			if strings.HasPrefix(e, prefix) {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, e)
		}
	}
	return result
}

// Root returns the top-level directory of the work tree containing dir.
func Root(dir string) (string, error) {
	return Run(dir, "rev-parse", "--show-toplevel")
}

// CheckIgnore asks git which of paths are ignored in the repository at dir,
// taking every .gitignore, .git/info/exclude and core.excludesFile into
// account. Tracked files are reported like untracked ones. Paths travel
// NUL-separated so git neither quotes nor escapes them.
func CheckIgnore(dir string, paths ...string) (map[string]bool, error) {
	ignored := make(map[string]bool, len(paths))
	if len(paths) == 0 {
		return ignored, nil
	}

	cmd := command(dir, "check-ignore", "-z", "--no-index", "--stdin")
	cmd.Stdin = strings.NewReader(strings.Join(paths, "\x00") + "\x00")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Exit status 1 means none of the paths is ignored.
	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !(errors.As(err, &exitErr) && exitErr.ExitCode() == 1) {
		return nil, fmt.Errorf("git check-ignore: %s: %w", strings.TrimSpace(stderr.String()), err)
	}

	for _, p := range strings.Split(stdout.String(), "\x00") {
		if p != "" {
			ignored[p] = true
		}
	}
	return ignored, nil
}
