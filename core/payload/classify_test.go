package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"post-sync/core/payload"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        payload.Format
	}{
		{"json content type", "application/json", `{}`, payload.FormatJSON},
		{"xml content type", "application/xml; charset=utf-8", `<r/>`, payload.FormatXML},
		{"text/xml content type", "text/xml", `<r/>`, payload.FormatXML},
		{"xml declaration without header", "text/plain", `<?xml version="1.0"?><r/>`, payload.FormatXML},
		{"leading whitespace before declaration", "", "\n  <?xml version=\"1.0\"?><r/>", payload.FormatXML},
		{"no hints defaults to json", "", `{"a": 1}`, payload.FormatJSON},
		{"bare angle bracket is not enough", "", `<not-xml>`, payload.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payload.Classify(tt.contentType, []byte(tt.body)))
		})
	}
}

func TestDecode_DispatchesOnFormat(t *testing.T) {
	v, err := payload.Decode("application/json", []byte(`{"a": "1"}`))
	require.NoError(t, err)
	assert.Equal(t, payload.KindMapping, v.Kind())

	v, err = payload.Decode("application/xml", []byte(`<root><a>1</a></root>`))
	require.NoError(t, err)
	assert.Equal(t, payload.KindMapping, v.Kind())

	_, err = payload.Decode("application/json", []byte(`{broken`))
	assert.ErrorIs(t, err, payload.ErrMalformed)
}
