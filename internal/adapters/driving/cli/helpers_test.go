package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/snippets-cli/internal/core/domain"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snippets-cli/internal/core/services"
	"github.com/custodia-labs/snippets-cli/internal/logger"
)

// setupTestServices wires memory-backed services and returns a restore func.
func setupTestServices() func() {
	oldSnippets, oldSettings, oldBootstrap := snippetService, settingsService, bootstrap

	snippetService = services.NewSnippetService(memory.NewSnippetStore())
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	bootstrap = nil

	return func() {
		snippetService, settingsService, bootstrap = oldSnippets, oldSettings, oldBootstrap
		opts = Options{Output: formatText}
		logger.Reset()
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		opts = Options{Output: formatText}
	}()

	err := Execute(context.Background())
	return stdout.String(), stderr.String(), err
}

// fakeBootstrap records what prepare asked it to build.
type fakeBootstrap struct {
	settings driving.SettingsService
	opened   []domain.DatabaseSettings
	closed   int
	err      error
}

func (f *fakeBootstrap) Settings(Options) (driving.SettingsService, error) {
	return f.settings, nil
}

func (f *fakeBootstrap) Snippets(_ context.Context, db domain.DatabaseSettings) (driving.SnippetService, io.Closer, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	f.opened = append(f.opened, db)
	return services.NewSnippetService(memory.NewSnippetStore()), closerFunc(func() error {
		f.closed++
		return nil
	}), nil
}

type closerFunc func() error

func (c closerFunc) Close() error { return c() }
