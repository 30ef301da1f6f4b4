package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driven/storage/postgres"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/snippets-cli/internal/core/domain"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snippets-cli/internal/core/services"
)

// bootstrap wires the file config store and the selected snippet store
// into core services.
type bootstrap struct {
	configDir string
}

var _ cli.Bootstrap = (*bootstrap)(nil)

// Settings loads config.toml from the configuration directory.
func (b *bootstrap) Settings(opts cli.Options) (driving.SettingsService, error) {
	b.configDir = opts.ConfigDir

	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

// Snippets opens the backend named in db.
func (b *bootstrap) Snippets(ctx context.Context, db domain.DatabaseSettings) (driving.SnippetService, io.Closer, error) {
	store, err := b.openStore(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	return services.NewSnippetService(store), store, nil
}

func (b *bootstrap) openStore(ctx context.Context, db domain.DatabaseSettings) (driven.SnippetStore, error) {
	switch db.Backend {
	case domain.BackendPostgres:
		return postgres.Connect(ctx, db)
	case domain.BackendSQLite:
		dir := db.Path
		if dir == "" && b.configDir != "" {
			dir = filepath.Join(b.configDir, "data")
		}
		return sqlite.NewStore(dir)
	case domain.BackendMemory:
		return memory.NewSnippetStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, db.Backend)
	}
}
