package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/re-cinq/gig/internal/fileutil"
	"github.com/re-cinq/gig/internal/gitignore"
	"github.com/re-cinq/gig/internal/templates"
	"github.com/spf13/cobra"
)

var (
	listFlag   bool
	allFlag    bool
	appendFlag bool
	forceFlag  bool
)

// runGenerate resolves the requested templates and writes the merged result.
func runGenerate(cmd *cobra.Command, args []string) error {
	if listFlag {
		return printKeys(cmd.OutOrStdout(), allFlag)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var languages []string
	switch {
	case len(args) > 0:
		languages, err = parseLanguages(args[0])
		if err != nil {
			return err
		}
	case len(cfg.Templates) > 0:
		languages = cfg.Templates
	default:
		return cmd.Help()
	}

	output := cfg.Output
	if len(args) > 1 {
		output = args[1]
	}

	mode := gitignore.FailIfExists
	if forceFlag {
		mode = gitignore.Overwrite
	}

	var base []string
	if (appendFlag || (cfg.Append && !forceFlag)) && !fileutil.IsStdout(output) {
		existing, err := gitignore.Read(output)
		if err != nil {
			return err
		}
		base = append(base, existing)
		mode = gitignore.Overwrite
	}

	content, err := compose(languages, cfg.Extra, base...)
	if err != nil {
		return err
	}

	if fileutil.IsStdout(output) {
		_, err := io.WriteString(cmd.OutOrStdout(), content)
		return err
	}

	fileutil.Logger.Debug("writing ignore file", "path", output, "mode", mode)
	if err := gitignore.Write(output, content, mode); err != nil {
		if errors.Is(err, gitignore.ErrExists) {
			return fmt.Errorf("file %s already exists; remove it first, choose a different path, or use --append/--force", output)
		}
		return err
	}
	return nil
}

// compose resolves languages against the bundled index and merges them after
// base, followed by any extra lines from the config.
func compose(languages, extra []string, base ...string) (string, error) {
	idx, err := loadIndex()
	if err != nil {
		return "", err
	}

	fileutil.Logger.Debug("resolving templates", "templates", strings.Join(languages, ","))
	content, err := idx.Compose(languages, base...)
	if err != nil {
		return "", err
	}

	if len(extra) > 0 {
		content = templates.Merge(content, strings.Join(extra, "\n"))
	}
	return content, nil
}
