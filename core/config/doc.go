// Package config loads application configuration from environment variables
// and an optional .env file.
//
// Each subsystem owns its partial Config struct; this package composes them
// and registers their struct-tag defaults with Viper, so SERVER_PORT maps to
// server.port and so on. Runtime sync settings (the API definition and the
// attribute map) are not configured here; they live in the options store and
// are managed through the sync endpoints.
package config
