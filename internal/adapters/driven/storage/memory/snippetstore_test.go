package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driven/storage/storetest"
	"github.com/custodia-labs/snippets-cli/internal/core/domain"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driven"
)

func TestSnippetStore_Contract(t *testing.T) {
	storetest.Run(t, func(_ *testing.T) driven.SnippetStore {
		return NewSnippetStore()
	})
}

func TestNewSnippetStore(t *testing.T) {
	store := NewSnippetStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.snippets)
	assert.Equal(t, 0, store.Len())
}

func TestSnippetStore_SearchIsCaseSensitive(t *testing.T) {
	store := NewSnippetStore()
	ctx := context.Background()
	_, err := store.Put(ctx, "hello", "World")
	require.NoError(t, err)

	got, err := store.Search(ctx, "world")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = store.Search(ctx, "World")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSnippetStore_Closed(t *testing.T) {
	store := NewSnippetStore()
	ctx := context.Background()
	require.NoError(t, store.Close())

	_, err := store.Put(ctx, "k", "v")
	assert.ErrorIs(t, err, domain.ErrConnection)

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrConnection)

	_, err = store.Catalog(ctx)
	assert.ErrorIs(t, err, domain.ErrConnection)

	_, err = store.Search(ctx, "v")
	assert.ErrorIs(t, err, domain.ErrConnection)
}

func TestSnippetStore_ConcurrentPut(t *testing.T) {
	store := NewSnippetStore()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func(n int) {
			_, _ = store.Put(ctx, "shared", string(rune('a'+n)))
			_, _ = store.Catalog(ctx)
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	assert.Equal(t, 1, store.Len())
}

func TestConfigStore(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("database.port", 5432))
	require.NoError(t, store.Set("database.host", "localhost"))
	require.NoError(t, store.Set("database.user", int64(7)))

	assert.Equal(t, 5432, store.GetInt("database.port"))
	assert.Equal(t, "localhost", store.GetString("database.host"))
	assert.Equal(t, "", store.GetString("database.user"))
	assert.Equal(t, 7, store.GetInt("database.user"))
	assert.Equal(t, []string{"database.host", "database.port", "database.user"}, store.Keys())
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
}
