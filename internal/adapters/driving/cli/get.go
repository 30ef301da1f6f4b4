package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:         "get <name>",
	Short:       "Retrieve the snippet stored under a name",
	Args:        cobra.ExactArgs(1),
	Annotations: storeAnnotation(),
	RunE:        runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	svc, err := requireSnippets()
	if err != nil {
		return err
	}

	lookup, err := svc.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("retrieving snippet: %w", err)
	}

	if structured() {
		return writeStructured(cmd.OutOrStdout(), lookup)
	}
	if !lookup.Found {
		warn(cmd.ErrOrStderr(), "%s has no snippet stored against it", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Retrieved snippet: '%s'\n", lookup.Display())
	return nil
}
