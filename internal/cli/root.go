package cli

import (
	"fmt"
	"os"

	"github.com/re-cinq/gig/internal/fileutil"
	"github.com/re-cinq/gig/internal/templates"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	Version    = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "gig <languages> [output]",
	Short: "Generate .gitignore files from GitHub's template collection",
	Long: `gig - generate .gitignore files from GitHub's template collection

Arguments:
  languages  Comma-separated list of language/tool templates (e.g., python or go,godot,node)
  output     Path to write the .gitignore file (default: .gitignore, "-" for stdout)

Templates are sourced from https://github.com/github/gitignore`,
	Example: `  gig python                   Create .gitignore for Python
  gig go,godot,node            Create .gitignore for Go + Godot + Node
  gig rust src/.gitignore      Create .gitignore for Rust in src/
  gig -a macos                 Merge the macOS template into an existing .gitignore`,
	Args:          cobra.MaximumNArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		fileutil.SetVerbose(verbose)
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default: nearest .gig.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().BoolVar(&listFlag, "list", false, "list all available language templates")
	rootCmd.Flags().BoolVar(&allFlag, "all", false, "with --list, also list qualified aliases")
	rootCmd.Flags().BoolVarP(&appendFlag, "append", "a", false, "merge into an existing file instead of failing")
	rootCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "overwrite an existing file")
	rootCmd.Flags().BoolP("version", "V", false, "show version information")
	rootCmd.MarkFlagsMutuallyExclusive("append", "force")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("gig {{.Version}}\n")
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fileutil.LogError("%s", err)
		if templates.IsNotFound(err) || templates.IsAmbiguous(err) {
			fmt.Fprintln(os.Stderr, "\nRun 'gig --list' to see available templates.")
		}
	}
	return err
}
