// Package middleware groups the Fiber middlewares shared by all routes:
// ray-id request correlation and API-key authentication.
package middleware
