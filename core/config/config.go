package config

import (
	"reflect"
	"strings"

	"post-sync/core/database"
	"post-sync/core/logger"
	"post-sync/core/notify"
	"post-sync/core/server"
	"post-sync/core/transport"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Transport holds configuration for the outbound API client.
	Transport transport.Config `mapstructure:"transport"`
	// Notify holds configuration for failure notification emails.
	Notify notify.Config `mapstructure:"notify"`
	// Sync holds configuration for the sync engine and scheduler.
	Sync SyncConfig `mapstructure:"sync"`
}

// SyncConfig tunes the sync engine.
type SyncConfig struct {
	// ChunkSize is the number of records attempted per interactive
	// round-trip. The default of 2 keeps each web request short.
	ChunkSize int `mapstructure:"chunk_size" default:"2"`
	// IntervalMinutes is the scheduled sync cadence. Zero disables the
	// scheduler until an interval is stored with the attribute map.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"0"`
	// CacheSeconds bounds how long settings reads may be served from the
	// options cache.
	CacheSeconds int `mapstructure:"cache_seconds" default:"30"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
