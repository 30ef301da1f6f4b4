package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse snippets interactively",
	Long: `Open an interactive browser over the snippet store.

Controls:
  ↑/k, ↓/j - Move through the list
  Enter    - Open the highlighted snippet
  /        - Search snippet text
  r        - Show the full catalog
  Esc      - Back
  q        - Quit`,
	Args:        cobra.NoArgs,
	Annotations: storeAnnotation(),
	RunE:        runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	app, err := tui.NewApp(tui.NewPorts(snippetService))
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
