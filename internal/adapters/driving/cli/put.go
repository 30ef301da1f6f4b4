package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put <name> <snippet>",
	Short: "Store a snippet under a name",
	Long: `Store a snippet under a name. An existing snippet with the same
name is overwritten.`,
	Args:        cobra.ExactArgs(2),
	Annotations: storeAnnotation(),
	RunE:        runPut,
}

func init() {
	rootCmd.AddCommand(putCmd)
}

func runPut(cmd *cobra.Command, args []string) error {
	svc, err := requireSnippets()
	if err != nil {
		return err
	}

	snippet, err := svc.Put(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("storing snippet: %w", err)
	}

	if structured() {
		return writeStructured(cmd.OutOrStdout(), snippet)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored '%s' as '%s'\n", snippet.Message, snippet.Keyword)
	return nil
}
