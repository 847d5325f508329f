package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listDB string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every include key",
	Long: `List prints every key a template can include, one per line.

Examples:
  fragdoc list
  fragdoc list --db .fragdoc/fragments.db`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listDB, "db", "", "read keys from a snapshot instead of the source tree")
}

func runList(cmd *cobra.Command, args []string) error {
	fragments, closeFn, err := openFragments(listDB)
	if err != nil {
		return err
	}
	defer closeFn()

	out := cmd.OutOrStdout()
	for _, key := range fragments.Keys() {
		fmt.Fprintln(out, key.String())
	}
	return nil
}
