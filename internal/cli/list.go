package cli

import (
	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available language templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printKeys(cmd.OutOrStdout(), listAll)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "also list qualified aliases of templates that have a bare name")
	rootCmd.AddCommand(listCmd)
}
