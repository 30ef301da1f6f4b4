package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)

// parseFormat validates an --output value.
func parseFormat(s string) (string, error) {
	switch s {
	case formatText, formatJSON, formatYAML:
		return s, nil
	case "":
		return formatText, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q (want text, json or yaml)", domain.ErrInvalidInput, s)
	}
}

// structured reports whether the current command should emit JSON or YAML.
func structured() bool {
	return opts.Output == formatJSON || opts.Output == formatYAML
}

// writeStructured encodes v in the selected machine-readable format.
func writeStructured(w io.Writer, v any) error {
	switch opts.Output {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}

// warn writes a warning line to w, styled when w is a terminal.
func warn(w io.Writer, format string, args ...any) {
	msg := "Warning - " + fmt.Sprintf(format, args...)
	if isTerminal(w) {
		msg = warningStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
