package options_test

import (
	"context"
	"testing"
	"time"

	"post-sync/core/database"
	"post-sync/core/options"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *options.Store {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	store := options.NewStore(db, ttl)
	require.NoError(t, store.Migrate())
	return store
}

func TestStore_GetPutDelete(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	// Absent key
	_, ok, err := store.Get(ctx, "postsync:settings")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Put then Get
	err = store.Put(ctx, "postsync:settings", `{"url":"https://api.example.com"}`)
	assert.NoError(t, err)

	val, ok, err := store.Get(ctx, "postsync:settings")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"url":"https://api.example.com"}`, val)

	// Put replaces
	err = store.Put(ctx, "postsync:settings", `{"url":"https://other.example.com"}`)
	assert.NoError(t, err)

	val, ok, err = store.Get(ctx, "postsync:settings")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"url":"https://other.example.com"}`, val)

	// Delete
	err = store.Delete(ctx, "postsync:settings")
	assert.NoError(t, err)

	_, ok, err = store.Get(ctx, "postsync:settings")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine
	assert.NoError(t, store.Delete(ctx, "postsync:settings"))
}

func TestStore_CacheInvalidation(t *testing.T) {
	store := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "v1"))

	// Prime the cache
	val, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v1", val)

	// A write must not leave the stale value cached
	require.NoError(t, store.Put(ctx, "k", "v2"))

	val, ok, err = store.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", val)

	// Same for deletes
	require.NoError(t, store.Delete(ctx, "k"))

	_, ok, err = store.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}
