package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:         "catalog",
	Short:       "List every stored name",
	Args:        cobra.NoArgs,
	Annotations: storeAnnotation(),
	RunE:        runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	svc, err := requireSnippets()
	if err != nil {
		return err
	}

	keywords, err := svc.Catalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("retrieving catalog: %w", err)
	}

	if structured() {
		return writeStructured(cmd.OutOrStdout(), keywords)
	}
	for _, k := range keywords {
		fmt.Fprintf(cmd.OutOrStdout(), "Catalog item: '%s'\n", k)
	}
	return nil
}
