package cli

import (
	"io"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <languages>",
	Short: "Print the merged templates to stdout without writing a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		languages, err := parseLanguages(args[0])
		if err != nil {
			return err
		}

		content, err := compose(languages, nil)
		if err != nil {
			return err
		}

		_, err = io.WriteString(cmd.OutOrStdout(), content)
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
