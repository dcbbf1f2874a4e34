package ignore

import (
	"os"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Matcher checks paths against ignore patterns.
type Matcher struct {
	gi *gitignore.GitIgnore
}

// Compile builds a Matcher from the text of an ignore file.
func Compile(content string) *Matcher {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	return &Matcher{gi: gitignore.CompileIgnoreLines(lines...)}
}

// Load loads the ignore file at path.
// Returns a Matcher that matches nothing if the file does not exist.
func Load(path string) (*Matcher, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Matcher{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Compile(string(data)), nil
}

// Ignored returns true if path matches the patterns.
func (m *Matcher) Ignored(path string) bool {
	if m.gi == nil {
		return false
	}
	return m.gi.MatchesPath(path)
}

// AllIgnored returns true if all given paths match the patterns.
func (m *Matcher) AllIgnored(paths []string) bool {
	if m.gi == nil {
		return false
	}
	if len(paths) == 0 {
		return false
	}
	for _, p := range paths {
		if !m.gi.MatchesPath(p) {
			return false
		}
	}
	return true
}
