package transport

// Config holds configuration for the outbound HTTP client.
type Config struct {
	// TimeoutSeconds is the fallback request timeout when a request does not
	// carry its own.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerMinute throttles outbound API calls. Zero disables limiting.
	RequestsPerMinute int `mapstructure:"requests_per_minute" default:"0"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"post-sync/1.0"`
}
