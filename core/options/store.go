package options

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Option is one persisted key/value row. Values are opaque text; callers
// store JSON documents.
type Option struct {
	Name      string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:longtext"`
	UpdatedAt time.Time
}

// TableName maps the model onto the options table.
func (Option) TableName() string { return "options" }

// Store is a GORM-backed key/value store with a read-through cache.
// Settings are read on every sync run, so cache hits keep the hot path off
// the database; writes invalidate synchronously.
type Store struct {
	db    *gorm.DB
	cache *gocache.Cache
}

// NewStore creates an options store. cacheTTL bounds how long a read may be
// served from memory; zero disables caching.
func NewStore(db *gorm.DB, cacheTTL time.Duration) *Store {
	var c *gocache.Cache
	if cacheTTL > 0 {
		c = gocache.New(cacheTTL, 2*cacheTTL)
	}
	return &Store{db: db, cache: c}
}

// Migrate creates the options table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Option{}); err != nil {
		return fmt.Errorf("migrate options table: %w", err)
	}
	return nil
}

// Get returns the stored value for key. The second return is false when the
// key is absent.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached.(string), true, nil
		}
	}

	var opt Option
	err := s.db.WithContext(ctx).First(&opt, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get option %q: %w", key, err)
	}

	if s.cache != nil {
		s.cache.SetDefault(key, opt.Value)
	}
	return opt.Value, true, nil
}

// Put stores or replaces the value for key.
func (s *Store) Put(ctx context.Context, key, value string) error {
	opt := Option{Name: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&opt).Error
	if err != nil {
		return fmt.Errorf("put option %q: %w", key, err)
	}
	if s.cache != nil {
		s.cache.Delete(key)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Option{}, "name = ?", key).Error; err != nil {
		return fmt.Errorf("delete option %q: %w", key, err)
	}
	if s.cache != nil {
		s.cache.Delete(key)
	}
	return nil
}
