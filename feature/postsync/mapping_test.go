package postsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"post-sync/core/payload"
	"post-sync/feature/postsync/models"
)

func decodeRecord(t *testing.T, body string) payload.Value {
	t.Helper()
	v, err := payload.DecodeJSON([]byte(body))
	require.NoError(t, err)
	return v
}

func TestMapRecord(t *testing.T) {
	f := newEngineFixture(t)
	attr := models.AttributeMap{
		TitlePath:       "headline",
		ContentPath:     "body:html",
		CategoryPath:    "section",
		TagPath:         "keywords",
		DefaultAuthorID: 7,
		CustomFields: []models.CustomFieldMap{
			{FieldName: "source_id", SourcePath: "id"},
			{FieldName: "empty_one", SourcePath: "missing"},
			{FieldName: "", SourcePath: "id"},
		},
	}
	rec := decodeRecord(t, `{
		"id": 123,
		"headline": "<b>Go &amp; On</b>",
		"body": {"html": "<p>text</p>"},
		"section": "News, Tech ,",
		"keywords": ["go", " sync ", ""]
	}`)

	mapped, err := f.engine.mapRecord(attr, rec)
	require.NoError(t, err)

	// Titles are stripped of markup and entity-unescaped; content keeps
	// its markup untouched.
	assert.Equal(t, "Go & On", mapped.Title)
	assert.Equal(t, "<p>text</p>", mapped.Content)
	assert.Equal(t, []string{"News", "Tech"}, mapped.Categories)
	assert.Equal(t, []string{"go", "sync"}, mapped.Tags)
	assert.Equal(t, uint(7), mapped.AuthorID)
	assert.Equal(t, map[string]string{"source_id": "123"}, mapped.CustomFields)
}

func TestMapRecord_TitleMissing(t *testing.T) {
	f := newEngineFixture(t)

	tests := []struct {
		name string
		attr models.AttributeMap
		body string
	}{
		{"no title path configured", models.AttributeMap{}, `{"title": "x"}`},
		{"path resolves nothing", models.AttributeMap{TitlePath: "title"}, `{"headline": "x"}`},
		{"title is whitespace", models.AttributeMap{TitlePath: "title"}, `{"title": "   "}`},
		{"title is markup only", models.AttributeMap{TitlePath: "title"}, `{"title": "<br/>"}`},
		{"title is structured", models.AttributeMap{TitlePath: "title"}, `{"title": {"nested": "x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.mapRecord(tt.attr, decodeRecord(t, tt.body))
			assert.ErrorIs(t, err, ErrTitleMissing)
		})
	}
}

func TestSplitTerms(t *testing.T) {
	seq := decodeRecord(t, `["a", " b ", ""]`)
	assert.Equal(t, []string{"a", "b"}, splitTerms(seq))

	scalar := decodeRecord(t, `"one, two,, three "`)
	assert.Equal(t, []string{"one", "two", "three"}, splitTerms(scalar))

	assert.Nil(t, splitTerms(payload.Null()))
	assert.Nil(t, splitTerms(payload.Scalar(" , ")))
}
