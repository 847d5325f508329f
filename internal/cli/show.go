package cli

import (
	"fmt"
	"strings"

	"fragdoc/internal/adapter/extract"
	"fragdoc/internal/adapter/render"
	"fragdoc/internal/domain"
	"github.com/spf13/cobra"
)

var (
	showDB  string
	showRaw bool
)

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Print one fragment",
	Long: `Show prints a single fragment the way render would substitute it.

Examples:
  fragdoc show src/main/java/demo/Foo.java#bar
  fragdoc show src/main/java/demo/Foo.java##start --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showDB, "db", "", "read the fragment from a snapshot instead of the source tree")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the stored body without normalization")
}

func runShow(cmd *cobra.Command, args []string) error {
	fragments, closeFn, err := openFragments(showDB)
	if err != nil {
		return err
	}
	defer closeFn()

	body, ok := render.Lookup(fragments, args[0])
	if !ok {
		return &domain.UnresolvedFragmentError{Key: args[0]}
	}

	if !showRaw {
		body = strings.TrimSpace(extract.Normalize(body))
	}
	fmt.Fprintln(cmd.OutOrStdout(), body)
	return nil
}
