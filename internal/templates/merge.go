package templates

import "strings"

// Merge concatenates template contents in order, dropping pattern lines that
// were already emitted. Comments and blank lines are always kept. Patterns
// compare by their exact trimmed text, so "*.log" and "*.LOG" are distinct.
// Every emitted line keeps its original text and ends with a single "\n".
// The output always uses LF line endings, even for CRLF input.
func Merge(contents ...string) string {
	seen := make(map[string]struct{})
	var b strings.Builder

	for _, content := range contents {
		for _, line := range splitLines(content) {
			trimmed := strings.TrimSpace(line)
			if isPattern(trimmed) {
				if _, dup := seen[trimmed]; dup {
					continue
				}
				seen[trimmed] = struct{}{}
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// isPattern reports whether a trimmed line is a pattern rather than a comment
// or a blank line.
func isPattern(trimmed string) bool {
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}

// splitLines splits on "\n", dropping a "\r" before each terminator. A final
// terminator does not start another line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
