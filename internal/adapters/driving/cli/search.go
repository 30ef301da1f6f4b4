package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

var searchCmd = &cobra.Command{
	Use:   "search <fragment>",
	Short: "Find snippets containing a text fragment",
	Long: `Print every stored snippet whose text contains the fragment.
The fragment is matched literally; % and _ have no special meaning.`,
	Args:        cobra.ExactArgs(1),
	Annotations: storeAnnotation(),
	RunE:        runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := requireSnippets()
	if err != nil {
		return err
	}

	matches, err := svc.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("searching snippets: %w", err)
	}

	if structured() {
		return writeStructured(cmd.OutOrStdout(), matches)
	}
	if len(matches) == 0 {
		warn(cmd.ErrOrStderr(), "no snippets found")
		fmt.Fprintln(cmd.OutOrStdout(), domain.NotAvailable)
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "Retrieved snippet: '%s'\n", m.Message)
	}
	return nil
}
