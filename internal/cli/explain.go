package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const explainText = `gig: .gitignore generator

PURPOSE
  gig writes .gitignore files from a snapshot of GitHub's template
  collection (github.com/github/gitignore) embedded in the binary. It never
  touches the network. Several templates can be merged into one file; repeated
  patterns are written once.

USAGE
  gig <languages> [output]
    languages  Comma-separated template names, e.g. "go,node,macos".
               Names are case-insensitive. Blank entries are an error.
    output     File to write (default .gitignore). "-" writes to stdout.

  Flags:
    --list         List template names (one per line). With --all, also
                   list qualified aliases.
    -a, --append   Merge into an existing file. Existing patterns come first
                   and win over template patterns.
    -f, --force    Replace an existing file.
    -c, --config   Config file (default: nearest .gig.yaml, .gig.yml
                   or .gig.toml).
    -v, --verbose  Debug logging on stderr.
    -V, --version  Print the version.

  Without --append or --force an existing output file is never modified and
  gig exits with status 1.

COMMANDS
  list        Same as --list.
  show        Print the merged templates to stdout.
  check       Report which paths the merged templates (or --file) ignore.
  validate    Validate the config file; prints "valid" or one error per line.
  schema      Output the JSON Schema of the config file.
  version     Print the version.
  explain     Print this reference.

TEMPLATE NAMES
  Each template has a qualified name built from its path in the collection,
  lowercased and joined with "-":
    Go.gitignore                      -> go
    Global/macOS.gitignore            -> global-macos
    community/CFML/ColdBox.gitignore  -> community-cfml-coldbox
  A template can also be used by its bare name (macos, coldbox) when that
  name is unique. If several templates share a bare name, a top-level
  template keeps it; otherwise the bare name is ambiguous and gig lists the
  qualified names to choose from. There is no prefix matching.

MERGING
  Templates are concatenated in the order given. Comment and blank lines are
  always kept. Pattern lines are compared by their trimmed text, case-
  sensitively ("*.log" and "*.LOG" are different); only the first occurrence
  is written. Merging is all-or-nothing: if any name fails to resolve,
  nothing is written.

CONFIG FORMAT (.gig.yaml)
  output: .gitignore        # default output path
  append: false             # behave as if --append were given
  templates: [go, macos]    # used when no languages argument is given
  extra:                    # literal lines merged after the templates
    - /dist/

  The same keys may be written in TOML as .gig.toml:
    templates = ["go", "macos"]
    extra = ["/dist/"]`

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print agent-friendly reference for gig",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), explainText)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
