package postsync

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"post-sync/feature/postsync/models"
)

func TestBuildRequest_Defaults(t *testing.T) {
	req, err := BuildRequest(models.ApiSettings{URL: "https://api.example.com/posts"})
	require.NoError(t, err)

	assert.Equal(t, models.MethodGet, req.Method)
	assert.Equal(t, "https://api.example.com/posts", req.URL)
	assert.Equal(t, 10*time.Second, req.Timeout)
	assert.Empty(t, req.Body)
}

func TestBuildRequest_ParamsAndHeaders(t *testing.T) {
	req, err := BuildRequest(models.ApiSettings{
		URL:    "https://api.example.com/posts?page=1",
		Method: "get",
		Params: []models.NameValue{
			{Name: " limit ", Value: " 25 "},
			{Name: "skipped", Value: "  "},
			{Name: "", Value: "orphan"},
			{Name: "zero", Value: "0"},
		},
		Headers: []models.NameValue{
			{Name: "X-Token", Value: "secret"},
			{Name: "Empty", Value: ""},
		},
		TimeoutSeconds: 45,
	})
	require.NoError(t, err)

	// Pairs with an empty trimmed name or value are dropped, but "0" is a
	// real value. Parameters join onto the existing query string in order.
	assert.Equal(t, "https://api.example.com/posts?page=1&limit=25&zero=0", req.URL)
	assert.Equal(t, map[string]string{"X-Token": "secret"}, req.Headers)
	assert.Equal(t, 45*time.Second, req.Timeout)
}

func TestBuildRequest_BodyEncodings(t *testing.T) {
	body := []models.NameValue{
		{Name: "a", Value: "1"},
		{Name: "b", Value: "two words"},
	}

	tests := []struct {
		name        string
		encoding    string
		wantBody    string
		wantContent string
	}{
		{"form by default", "", "a=1&b=two+words", "application/x-www-form-urlencoded"},
		{"none is form", models.EncodingNone, "a=1&b=two+words", "application/x-www-form-urlencoded"},
		{"json object in declared order", models.EncodingJSON, `{"a":"1","b":"two words"}`, "application/json"},
		{"url encoded text", models.EncodingURL, "a=1&b=two+words", ""},
		{"base64 of the json form", models.EncodingBase64, base64.StdEncoding.EncodeToString([]byte(`{"a":"1","b":"two words"}`)), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildRequest(models.ApiSettings{
				URL:          "https://api.example.com/posts",
				Method:       models.MethodPost,
				Body:         body,
				BodyEncoding: tt.encoding,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(req.Body))
			assert.Equal(t, tt.wantContent, req.ContentType)
		})
	}
}

func TestBuildRequest_BodyIgnoredOnGet(t *testing.T) {
	req, err := BuildRequest(models.ApiSettings{
		URL:  "https://api.example.com/posts",
		Body: []models.NameValue{{Name: "a", Value: "1"}},
	})
	require.NoError(t, err)
	assert.Empty(t, req.Body)
	assert.Empty(t, req.ContentType)
}
