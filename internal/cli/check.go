package cli

import (
	"fmt"
	"os"

	"github.com/re-cinq/gig/internal/git"
	"github.com/re-cinq/gig/internal/ignore"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	checkFile   string
	checkGit    bool
	checkStrict bool
)

var checkCmd = &cobra.Command{
	Use:   "check <languages> <path>...",
	Short: "Report which paths the merged templates would ignore",
	Long: `Report which paths the merged templates would ignore.

With --file, paths are checked against an existing ignore file instead and
every argument is a path. With --git, git itself decides, using every ignore
source of the repository in the working directory. With --strict, gig exits
with status 1 unless every path is ignored.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if checkFile != "" || checkGit {
			return cobra.MinimumNArgs(1)(cmd, args)
		}
		return cobra.MinimumNArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			ignored    func(string) bool
			allIgnored func([]string) bool
			paths      []string
		)

		switch {
		case checkGit:
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			paths = args
			result, err := git.CheckIgnore(wd, paths...)
			if err != nil {
				return err
			}
			ignored = func(p string) bool { return result[p] }
			allIgnored = func(ps []string) bool {
				return len(ps) > 0 && lo.EveryBy(ps, ignored)
			}
		case checkFile != "":
			m, err := ignore.Load(checkFile)
			if err != nil {
				return fmt.Errorf("loading %s: %w", checkFile, err)
			}
			paths = args
			ignored, allIgnored = m.Ignored, m.AllIgnored
		default:
			languages, err := parseLanguages(args[0])
			if err != nil {
				return err
			}
			content, err := compose(languages, nil)
			if err != nil {
				return err
			}
			paths = args[1:]
			m := ignore.Compile(content)
			ignored, allIgnored = m.Ignored, m.AllIgnored
		}

		for _, p := range paths {
			status := "kept   "
			if ignored(p) {
				status = "ignored"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", status, p)
		}

		if checkStrict && !allIgnored(paths) {
			return fmt.Errorf("not every path is ignored")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkFile, "file", "", "check against an existing ignore file")
	checkCmd.Flags().BoolVar(&checkGit, "git", false, "ask git which paths the current repository ignores")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "fail unless every path is ignored")
	checkCmd.MarkFlagsMutuallyExclusive("file", "git")
	rootCmd.AddCommand(checkCmd)
}
