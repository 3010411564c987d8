package content_test

import (
	"context"
	"testing"

	"post-sync/core/database"
	"post-sync/feature/content"
	"post-sync/feature/content/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *content.GormStore {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	store := content.NewStore(db, zap.NewNop())
	require.NoError(t, store.Migrate())
	return store
}

func TestFindByTitle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Upsert(ctx, &content.Record{Title: "Hello World"})
	require.NoError(t, err)
	require.NotZero(t, id)

	found, err := store.FindByTitle(ctx, "Hello World", "post")
	assert.NoError(t, err)
	assert.Equal(t, id, found)

	// Exact match only
	found, err = store.FindByTitle(ctx, "Hello", "post")
	assert.NoError(t, err)
	assert.Zero(t, found)

	// Type is part of the key
	found, err = store.FindByTitle(ctx, "Hello World", "page")
	assert.NoError(t, err)
	assert.Zero(t, found)
}

func TestUpsert_CreateThenUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	catIDs, err := store.EnsureTerms(ctx, []string{"News"}, content.TaxonomyCategory)
	require.NoError(t, err)
	require.Len(t, catIDs, 1)

	id, err := store.Upsert(ctx, &content.Record{
		Title:    "Breaking",
		Content:  "first version",
		AuthorID: 7,
		TermIDs:  catIDs,
		Meta:     map[string]string{"source_id": "42"},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	// Second upsert with the same id updates in place.
	newTerms, err := store.EnsureTerms(ctx, []string{"Updates"}, content.TaxonomyCategory)
	require.NoError(t, err)

	id2, err := store.Upsert(ctx, &content.Record{
		ID:      id,
		Title:   "Breaking",
		Content: "second version",
		TermIDs: newTerms,
		Meta:    map[string]string{"source_id": "42", "revision": "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	var count int64
	require.NoError(t, store.DB().Model(&models.Post{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var post models.Post
	require.NoError(t, store.DB().Preload("Terms").Preload("Meta").First(&post, id).Error)
	assert.Equal(t, "second version", post.Content)
	require.Len(t, post.Terms, 1)
	assert.Equal(t, "Updates", post.Terms[0].Name)
	assert.Len(t, post.Meta, 2)
}

func TestUpsert_DefaultsAndEmptyTitle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Upsert(ctx, &content.Record{})
	assert.Error(t, err)

	id, err := store.Upsert(ctx, &content.Record{Title: "Defaults"})
	require.NoError(t, err)

	var post models.Post
	require.NoError(t, store.DB().First(&post, id).Error)
	assert.Equal(t, "publish", post.Status)
	assert.Equal(t, "post", post.Type)
}

func TestEnsureTerms_ReusesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.EnsureTerms(ctx, []string{"Tech", "Science"}, content.TaxonomyCategory)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Same names again: same ids, no duplicates.
	second, err := store.EnsureTerms(ctx, []string{"Tech", "Science"}, content.TaxonomyCategory)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Same name under another taxonomy is a distinct term.
	tagIDs, err := store.EnsureTerms(ctx, []string{"Tech"}, content.TaxonomyTag)
	require.NoError(t, err)
	require.Len(t, tagIDs, 1)
	assert.NotEqual(t, first[0], tagIDs[0])

	// Empty names are skipped.
	ids, err := store.EnsureTerms(ctx, []string{"", "Tech"}, content.TaxonomyCategory)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}
