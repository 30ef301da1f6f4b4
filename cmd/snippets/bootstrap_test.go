package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

func TestBootstrap_Settings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.toml"),
		[]byte("[database]\nbackend = \"sqlite\"\nhost = \"db.internal\"\n"),
		0600,
	))
	b := &bootstrap{}

	svc, err := b.Settings(cli.Options{ConfigDir: dir})
	require.NoError(t, err)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.BackendSQLite, settings.Database.Backend)
	assert.Equal(t, "db.internal", settings.Database.Host)
	assert.Equal(t, filepath.Join(dir, "config.toml"), svc.Path())
}

func TestBootstrap_Memory(t *testing.T) {
	b := &bootstrap{}
	ctx := context.Background()

	svc, closer, err := b.Snippets(ctx, domain.DatabaseSettings{Backend: domain.BackendMemory})
	require.NoError(t, err)
	defer closer.Close()

	_, err = svc.Put(ctx, "hello", "world")
	require.NoError(t, err)
	l, err := svc.Get(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "world", l.Display())
}

func TestBootstrap_SQLiteUnderConfigDir(t *testing.T) {
	dir := t.TempDir()
	b := &bootstrap{configDir: dir}
	ctx := context.Background()

	svc, closer, err := b.Snippets(ctx, domain.DatabaseSettings{Backend: domain.BackendSQLite})
	require.NoError(t, err)

	_, err = svc.Put(ctx, "hello", "world")
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.FileExists(t, filepath.Join(dir, "data", "snippets.db"))
}

func TestBootstrap_SQLiteExplicitPath(t *testing.T) {
	dir := t.TempDir()
	b := &bootstrap{configDir: t.TempDir()}

	_, closer, err := b.Snippets(context.Background(), domain.DatabaseSettings{
		Backend: domain.BackendSQLite,
		Path:    dir,
	})
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.FileExists(t, filepath.Join(dir, "snippets.db"))
}

func TestBootstrap_PostgresUnreachable(t *testing.T) {
	b := &bootstrap{}

	_, _, err := b.Snippets(context.Background(), domain.DatabaseSettings{
		Backend: domain.BackendPostgres,
		Name:    "snippets",
		User:    "action",
		Host:    "127.0.0.1",
		Port:    1,
	})

	assert.ErrorIs(t, err, domain.ErrConnection)
}

func TestBootstrap_UnsupportedBackend(t *testing.T) {
	b := &bootstrap{}

	_, _, err := b.Snippets(context.Background(), domain.DatabaseSettings{Backend: "oracle"})

	assert.ErrorIs(t, err, domain.ErrUnsupportedBackend)
}
