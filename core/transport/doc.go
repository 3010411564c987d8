// Package transport provides the outbound HTTP client used to call the
// external content API.
//
// The Client interface separates request execution from request
// construction, so the sync engine can be exercised against stub transports
// in tests. The production HTTPClient carries strict connection timeouts and
// an optional outbound rate limiter (golang.org/x/time/rate) to stay polite
// toward the remote API on short sync intervals.
package transport
