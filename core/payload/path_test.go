package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"post-sync/core/payload"
)

func samplePayload(t *testing.T) payload.Value {
	t.Helper()
	v, err := payload.DecodeJSON([]byte(`{
		"posts": [
			{"title": "First", "meta": {"views": 10}},
			{"title": "Second", "tags": ["go", "sync"]}
		],
		"count": 2
	}`))
	require.NoError(t, err)
	return v
}

func TestResolve(t *testing.T) {
	v := samplePayload(t)

	tests := []struct {
		name string
		path string
		want string
		ok   bool
	}{
		{"top level scalar", "count", "2", true},
		{"nested mapping key", "posts:0:title", "First", true},
		{"deep nesting", "posts:0:meta:views", "10", true},
		{"sequence inside record", "posts:1:tags:1", "sync", true},
		{"numeric segment on mapping is a key lookup", "posts:0:0", "", false},
		{"missing key", "posts:0:author", "", false},
		{"index out of range", "posts:9:title", "", false},
		{"non-numeric segment on sequence", "posts:first:title", "", false},
		{"surrounding whitespace tolerated", " posts:0:title ", "First", true},
		{"empty path", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := payload.Resolve(tt.path, v)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Text())
			}
		})
	}
}

func TestResolve_NumericMappingKey(t *testing.T) {
	// A numeric segment indexes sequences but acts as a plain key on
	// mappings.
	v, err := payload.DecodeJSON([]byte(`{"a": [{"x": 1}, {"b": "v"}], "0": "zero"}`))
	require.NoError(t, err)

	got, ok := payload.Resolve("a:1:b", v)
	require.True(t, ok)
	assert.Equal(t, "v", got.Text())

	got, ok = payload.Resolve("0", v)
	require.True(t, ok)
	assert.Equal(t, "zero", got.Text())
}

func TestResolve_NeverPanicsOnScalars(t *testing.T) {
	v, err := payload.DecodeJSON([]byte(`{"a": "leaf"}`))
	require.NoError(t, err)

	_, ok := payload.Resolve("a:deeper:still", v)
	assert.False(t, ok)
}
