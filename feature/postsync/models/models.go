package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Request methods and body encodings accepted by the API settings.
const (
	MethodGet  = "GET"
	MethodPost = "POST"

	EncodingNone   = "none"
	EncodingBase64 = "base64"
	EncodingJSON   = "json"
	EncodingURL    = "url"
)

// DefaultTimeoutSeconds applies when the stored timeout is absent or invalid.
const DefaultTimeoutSeconds = 10

// NameValue is one ordered name/value pair used for query parameters,
// headers, and body fields.
type NameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ApiSettings describes how to call the external API. It is loaded once at
// the start of a sync run and treated as immutable for the run's duration.
type ApiSettings struct {
	URL            string      `json:"url"`
	Method         string      `json:"method"`
	TimeoutSeconds int         `json:"timeout_seconds"`
	Params         []NameValue `json:"params"`
	Headers        []NameValue `json:"headers"`
	Body           []NameValue `json:"body"`
	BodyEncoding   string      `json:"body_encoding"`
}

// Timeout returns the request timeout, falling back to the default when the
// stored value is not a positive integer.
func (s ApiSettings) Timeout() time.Duration {
	if s.TimeoutSeconds > 0 {
		return time.Duration(s.TimeoutSeconds) * time.Second
	}
	return DefaultTimeoutSeconds * time.Second
}

// Validate checks the settings a client is trying to store.
func (s ApiSettings) Validate() error {
	if s.URL != "" {
		parsed, err := url.Parse(s.URL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid api url %q", s.URL)
		}
	}
	switch strings.ToUpper(s.Method) {
	case "", MethodGet, MethodPost:
	default:
		return fmt.Errorf("unsupported method %q", s.Method)
	}
	switch s.BodyEncoding {
	case "", EncodingNone, EncodingBase64, EncodingJSON, EncodingURL:
	default:
		return fmt.Errorf("unsupported body encoding %q", s.BodyEncoding)
	}
	if s.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// CustomFieldMap maps one custom field onto a source path inside a record.
type CustomFieldMap struct {
	FieldName  string `json:"field_name"`
	SourcePath string `json:"source_path"`
}

// AttributeMap describes how record fields map onto the content schema.
type AttributeMap struct {
	TitlePath       string           `json:"title_path"`
	ContentPath     string           `json:"content_path"`
	CategoryPath    string           `json:"category_path"`
	TagPath         string           `json:"tag_path"`
	CustomFields    []CustomFieldMap `json:"custom_fields"`
	DefaultAuthorID uint             `json:"default_author_id"`
	UpdateExisting  bool             `json:"update_existing"`
	// SyncIntervalMinutes is the scheduled sync cadence. Zero disables
	// scheduled runs.
	SyncIntervalMinutes int `json:"sync_interval_minutes"`
}

// Validate checks the attribute map a client is trying to store.
func (m AttributeMap) Validate() error {
	if m.SyncIntervalMinutes < 0 {
		return fmt.Errorf("sync interval must not be negative")
	}
	for _, cf := range m.CustomFields {
		if cf.FieldName == "" && cf.SourcePath != "" {
			return fmt.Errorf("custom field with source path %q has no field name", cf.SourcePath)
		}
	}
	return nil
}

// MappedRecord is one record after attribute mapping, ready for upsert.
// It only lives between resolution and the content-store call.
type MappedRecord struct {
	Title        string
	Content      string
	Categories   []string
	Tags         []string
	CustomFields map[string]string
	AuthorID     uint
}

// ManualRequest is the body of a manual sync call. Initial marks the first
// call of an interactive sequence, which discards any persisted tail and
// fetches fresh.
type ManualRequest struct {
	Initial bool `json:"initial"`
}

// ChunkReport is returned to interactive callers after each chunk so the
// client can drive continuation polling.
type ChunkReport struct {
	Added      int `json:"added"`
	TotalItems int `json:"total_items"`
}

// ConnectionReport is the outcome of a test-connection run. No content is
// ever created on this path.
type ConnectionReport struct {
	Configured bool   `json:"configured"`
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message,omitempty"`
	Payload    any    `json:"payload,omitempty"`
}
