package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snippets-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// annotationStore marks commands that need an open snippet store.
const annotationStore = "snippets/store"

// Options holds the persistent flag values.
type Options struct {
	ConfigDir string
	Backend   string
	Verbose   bool
	Output    string
}

// Bootstrap builds services once persistent flags are parsed.
// main supplies the implementation; tests inject services directly instead.
type Bootstrap interface {
	// Settings returns the settings service for the configured directory.
	Settings(opts Options) (driving.SettingsService, error)

	// Snippets opens the store described by db and returns a service over it.
	// The closer releases the store handle.
	Snippets(ctx context.Context, db domain.DatabaseSettings) (driving.SnippetService, io.Closer, error)
}

var (
	opts      Options
	bootstrap Bootstrap

	snippetService  driving.SnippetService
	settingsService driving.SettingsService

	// closers run after the command finishes, last opened first.
	closers []io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Store and retrieve named text snippets",
	Long: `snippets keeps short named pieces of text in a relational table.

Store a snippet under a name, read it back, list every stored name,
or search stored text for a fragment. PostgreSQL is the default backend;
SQLite and an in-memory store are available through --backend. The
in-memory store lasts only as long as the process, so it suits browse
and mcp serve rather than one-shot commands.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              cobra.NoArgs,
	PersistentPreRunE: prepare,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.snippets)")
	rootCmd.PersistentFlags().StringVar(&opts.Backend, "backend", "", "storage backend: postgres, sqlite or memory (memory is not persisted between runs)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", formatText, "output format: text, json or yaml")
	rootCmd.Version = version
}

// SetBootstrap installs the service builder used before each command.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// SetArgs sets the command-line arguments, excluding the program name.
func SetArgs(args []string) {
	rootCmd.SetArgs(args)
}

// Execute runs the root command and releases anything opened for it.
func Execute(ctx context.Context) error {
	defer release()
	return rootCmd.ExecuteContext(ctx)
}

// runRoot rejects a bare invocation; a command is required.
func runRoot(cmd *cobra.Command, _ []string) error {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return fmt.Errorf("%w: a command is required", domain.ErrInvalidInput)
}

// prepare validates flags, configures logging and builds the services
// the command needs.
func prepare(cmd *cobra.Command, _ []string) error {
	if _, err := parseFormat(opts.Output); err != nil {
		return err
	}
	logger.SetVerbose(opts.Verbose)

	if bootstrap == nil {
		return nil
	}

	settingsSvc, err := bootstrap.Settings(opts)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	settingsService = settingsSvc

	settings, err := settingsSvc.Get()
	if err != nil {
		// config commands must still run so a bad value can be fixed.
		if !needsStore(cmd) {
			return nil
		}
		return err
	}

	if err := configureLogging(settings.Log); err != nil {
		return err
	}

	if !needsStore(cmd) {
		return nil
	}

	db := settings.Database
	if opts.Backend != "" {
		db.Backend = domain.Backend(opts.Backend)
		if !db.Backend.IsValid() {
			return fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, opts.Backend)
		}
	}

	logger.Debug("Opening %s store", db.Backend.Description())
	svc, closer, err := bootstrap.Snippets(cmd.Context(), db)
	if err != nil {
		return err
	}
	snippetService = svc
	if closer != nil {
		closers = append(closers, closer)
	}
	return nil
}

// configureLogging applies the log threshold and optional log file.
func configureLogging(cfg domain.LogSettings) error {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if cfg.File != "" {
		closer, err := logger.OpenFile(cfg.File)
		if err != nil {
			return err
		}
		closers = append(closers, closer)
	}
	// Verbose keeps debug output regardless of the configured threshold.
	if !opts.Verbose {
		logger.SetLevel(level)
	}
	return nil
}

// release closes everything opened by prepare.
func release() {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			logger.Warn("close: %v", err)
		}
	}
	closers = nil
}

func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationStore] == "true" {
			return true
		}
	}
	return false
}

// storeAnnotation marks a command as needing the snippet store.
func storeAnnotation() map[string]string {
	return map[string]string{annotationStore: "true"}
}

// requireSnippets returns the snippet service or an error when none is wired.
func requireSnippets() (driving.SnippetService, error) {
	if snippetService == nil {
		return nil, errors.New("snippet service not configured")
	}
	return snippetService, nil
}
