// Package server holds the HTTP server configuration: listen port and the
// API key protecting the sync endpoints.
package server
