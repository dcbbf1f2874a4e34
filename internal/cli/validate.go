package cli

import (
	"fmt"
	"os"

	"github.com/re-cinq/gig/internal/config"
	"github.com/re-cinq/gig/internal/templates"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate .gig.yaml and report errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if path == "" {
			return fmt.Errorf("no config file found (looked for .gig.yaml, .gig.yml or .gig.toml in this directory and its parents)")
		}

		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		errs := config.Validate(cfg)
		errs = append(errs, unresolvable(cfg.Templates)...)
		if len(errs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		}

		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
		return nil
	},
}

// unresolvable reports configured templates that the bundled collection
// does not provide.
func unresolvable(names []string) []string {
	idx, err := loadIndex()
	if err != nil {
		return []string{err.Error()}
	}

	var errs []string
	for i, name := range names {
		if templates.Normalize(name) == "" {
			continue
		}
		if _, err := idx.Resolve(name); err != nil {
			errs = append(errs, fmt.Sprintf("templates[%d]: %s", i, err))
		}
	}
	return errs
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
