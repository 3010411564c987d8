package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"post-sync/core/payload"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Feed</title>
    <item>
      <title>First</title>
      <category>news</category>
    </item>
    <item>
      <title>Second</title>
      <category>tech</category>
    </item>
  </channel>
</rss>`

func TestDecodeXML_RepeatedElementsBecomeSequence(t *testing.T) {
	v, err := payload.DecodeXML([]byte(sampleFeed))
	require.NoError(t, err)

	// Root attributes and children are fields of the returned mapping.
	version, ok := v.Field("version")
	require.True(t, ok)
	assert.Equal(t, "2.0", version.Text())

	got, ok := payload.Resolve("channel:item:1:title", v)
	require.True(t, ok)
	assert.Equal(t, "Second", got.Text())
}

func TestDecodeXML_LeafElementIsScalar(t *testing.T) {
	v, err := payload.DecodeXML([]byte(`<root><name>plain</name></root>`))
	require.NoError(t, err)

	name, ok := v.Field("name")
	require.True(t, ok)
	assert.Equal(t, payload.KindScalar, name.Kind())
	assert.Equal(t, "plain", name.Text())
}

func TestDecodeXML_MixedContentKeepsText(t *testing.T) {
	v, err := payload.DecodeXML([]byte(`<item id="7">hello<extra>x</extra></item>`))
	require.NoError(t, err)

	id, ok := v.Field("id")
	require.True(t, ok)
	assert.Equal(t, "7", id.Text())

	text, ok := v.Field("#text")
	require.True(t, ok)
	assert.Equal(t, "hello", text.Text())
}

func TestDecodeXML_Malformed(t *testing.T) {
	for _, body := range []string{``, `<open>`, `plain text`} {
		_, err := payload.DecodeXML([]byte(body))
		assert.ErrorIs(t, err, payload.ErrMalformed, "body %q", body)
	}
}

func TestDetectCollection_XMLFeed(t *testing.T) {
	v, err := payload.DecodeXML([]byte(sampleFeed))
	require.NoError(t, err)

	channel, ok := v.Field("channel")
	require.True(t, ok)

	col := payload.DetectCollection(channel)
	assert.Equal(t, "item", col.ContainerKey)
	assert.Len(t, col.Records, 2)
}
