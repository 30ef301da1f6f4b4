// Package storetest holds a behavioural test suite shared by every
// driven.SnippetStore adapter.
package storetest

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
	"github.com/custodia-labs/snippets-cli/internal/core/ports/driven"
)

// Factory returns an empty store. Cleanup is the factory's responsibility.
type Factory func(t *testing.T) driven.SnippetStore

// Run exercises the SnippetStore contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("put returns stored pair", func(t *testing.T) {
		store := newStore(t)
		got, err := store.Put(context.Background(), "hello", "world")
		require.NoError(t, err)
		assert.Equal(t, domain.Snippet{Keyword: "hello", Message: "world"}, got)
	})

	t.Run("round trip", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		pairs := map[string]string{
			"hello":   "world",
			"list":    "A sequence of things - created using []",
			"unicode": "héllo wörld ✓",
			"quotes":  `it's "quoted"`,
			"empty":   "",
		}
		for k, v := range pairs {
			_, err := store.Put(ctx, k, v)
			require.NoError(t, err)
		}

		for k, v := range pairs {
			l, err := store.Get(ctx, k)
			require.NoError(t, err)
			assert.True(t, l.Found, k)
			assert.Equal(t, v, l.Message, k)
			assert.Equal(t, k, l.Keyword)
		}
	})

	t.Run("put overwrites without duplicating", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		_, err := store.Put(ctx, "hello", "world")
		require.NoError(t, err)
		_, err = store.Put(ctx, "hello", "there")
		require.NoError(t, err)

		l, err := store.Get(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, "there", l.Message)

		keys, err := store.Catalog(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"hello"}, keys)
	})

	t.Run("get missing keyword", func(t *testing.T) {
		store := newStore(t)
		l, err := store.Get(context.Background(), "missing")
		require.NoError(t, err)
		assert.False(t, l.Found)
		assert.Equal(t, domain.NotAvailable, l.Display())
	})

	t.Run("catalog empty store", func(t *testing.T) {
		store := newStore(t)
		keys, err := store.Catalog(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, keys)
		assert.Empty(t, keys)
	})

	t.Run("catalog is sorted", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		for _, k := range []string{"b", "a", "Zebra", "apple", "a1"} {
			_, err := store.Put(ctx, k, "x")
			require.NoError(t, err)
		}

		keys, err := store.Catalog(ctx)
		require.NoError(t, err)
		assert.True(t, sort.StringsAreSorted(keys), "got %v", keys)
		assert.Equal(t, []string{"Zebra", "a", "a1", "apple", "b"}, keys)
	})

	t.Run("search finds substring", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		_, err := store.Put(ctx, "hello", "world")
		require.NoError(t, err)
		_, err = store.Put(ctx, "other", "something else")
		require.NoError(t, err)

		got, err := store.Search(ctx, "orl")
		require.NoError(t, err)
		assert.Equal(t, []string{"world"}, domain.Messages(got))
		assert.Equal(t, "hello", got[0].Keyword)
	})

	t.Run("search returns every match", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		for k, v := range map[string]string{"a": "red apple", "b": "green apple", "c": "pear"} {
			_, err := store.Put(ctx, k, v)
			require.NoError(t, err)
		}

		got, err := store.Search(ctx, "apple")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"red apple", "green apple"}, domain.Messages(got))
	})

	t.Run("search miss is empty", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		_, err := store.Put(ctx, "hello", "world")
		require.NoError(t, err)

		got, err := store.Search(ctx, "zzz")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		_, err := store.Put(ctx, "pct", "100% done")
		require.NoError(t, err)
		_, err = store.Put(ctx, "plain", "1000 done")
		require.NoError(t, err)
		_, err = store.Put(ctx, "under", "snake_case")
		require.NoError(t, err)
		_, err = store.Put(ctx, "nounder", "snakeXcase")
		require.NoError(t, err)
		_, err = store.Put(ctx, "slash", `C:\temp`)
		require.NoError(t, err)

		got, err := store.Search(ctx, "0%")
		require.NoError(t, err)
		assert.Equal(t, []string{"100% done"}, domain.Messages(got))

		got, err = store.Search(ctx, "e_c")
		require.NoError(t, err)
		assert.Equal(t, []string{"snake_case"}, domain.Messages(got))

		got, err = store.Search(ctx, `:\t`)
		require.NoError(t, err)
		assert.Equal(t, []string{`C:\temp`}, domain.Messages(got))
	})

	t.Run("search containment", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		message := "the quick brown fox"
		_, err := store.Put(ctx, "fox", message)
		require.NoError(t, err)

		for i := 0; i < len(message); i++ {
			for j := i + 1; j <= len(message); j += 3 {
				got, err := store.Search(ctx, message[i:j])
				require.NoError(t, err)
				assert.Contains(t, domain.Messages(got), message, "fragment %q", message[i:j])
			}
		}
	})

	t.Run("search does not match keywords", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		_, err := store.Put(ctx, "keyword-only", "body")
		require.NoError(t, err)

		got, err := store.Search(ctx, "keyword")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
