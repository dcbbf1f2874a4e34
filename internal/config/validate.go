package config

import (
	"fmt"
	"strings"

	"github.com/re-cinq/gig/internal/templates"
)

// Validate checks a loaded Config for semantic errors beyond what Load catches.
// Returns a list of human/agent-readable error strings, one per issue.
func Validate(cfg *Config) []string {
	var errs []string

	if strings.TrimSpace(cfg.Output) == "" {
		errs = append(errs, "output: must not be empty")
	}

	seen := make(map[string]bool)
	for i, name := range cfg.Templates {
		key := templates.Normalize(name)
		switch {
		case key == "":
			errs = append(errs, fmt.Sprintf("templates[%d]: required field is empty", i))
		case strings.Contains(name, ","):
			errs = append(errs, fmt.Sprintf("templates[%d]: %q contains a comma; list each template separately", i, name))
		case seen[key]:
			errs = append(errs, fmt.Sprintf("templates[%d]: duplicate template %q", i, name))
		default:
			seen[key] = true
		}
	}

	for i, line := range cfg.Extra {
		if strings.ContainsAny(line, "\r\n") {
			errs = append(errs, fmt.Sprintf("extra[%d]: must be a single line", i))
		}
	}

	return errs
}
