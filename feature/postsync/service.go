package postsync

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"post-sync/feature/postsync/models"
)

// Service exposes sync operations and settings management to the HTTP layer
// and the CLI.
type Service struct {
	engine    *Engine
	opts      OptionStore
	scheduler *Scheduler
	logger    *zap.Logger
}

// NewService creates a new sync service.
func NewService(engine *Engine, opts OptionStore, scheduler *Scheduler, logger *zap.Logger) *Service {
	return &Service{
		engine:    engine,
		opts:      opts,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Settings returns the stored API settings, zero-valued when none are stored.
func (s *Service) Settings(ctx context.Context) (models.ApiSettings, error) {
	var settings models.ApiSettings
	err := s.loadOption(ctx, OptionKeySettings, &settings)
	return settings, err
}

// SaveSettings validates and stores the API settings.
func (s *Service) SaveSettings(ctx context.Context, settings models.ApiSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.saveOption(ctx, OptionKeySettings, settings)
}

// AttributeMap returns the stored attribute map, zero-valued when none is
// stored.
func (s *Service) AttributeMap(ctx context.Context) (models.AttributeMap, error) {
	var attr models.AttributeMap
	err := s.loadOption(ctx, OptionKeyAttributeMap, &attr)
	return attr, err
}

// SaveAttributeMap validates and stores the attribute map, then re-arms the
// scheduler so a changed interval takes effect immediately.
func (s *Service) SaveAttributeMap(ctx context.Context, attr models.AttributeMap) error {
	if err := attr.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.saveOption(ctx, OptionKeyAttributeMap, attr); err != nil {
		return err
	}
	if s.scheduler != nil {
		s.scheduler.Reset(time.Duration(attr.SyncIntervalMinutes) * time.Minute)
	}
	return nil
}

// Interval returns the configured scheduled-sync cadence. Zero means
// scheduled sync is disabled.
func (s *Service) Interval(ctx context.Context) (time.Duration, error) {
	attr, err := s.AttributeMap(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(attr.SyncIntervalMinutes) * time.Minute, nil
}

// TestConnection runs a content-free connectivity check against the API.
func (s *Service) TestConnection(ctx context.Context) (*models.ConnectionReport, error) {
	return s.engine.TestConnection(ctx)
}

// TestSingleRecord syncs exactly one record.
func (s *Service) TestSingleRecord(ctx context.Context) error {
	return s.engine.TestSingleRecord(ctx)
}

// ManualChunk runs one interactive sync chunk.
func (s *Service) ManualChunk(ctx context.Context, initial bool) (*models.ChunkReport, error) {
	return s.engine.ManualChunk(ctx, initial)
}

// RunScheduled runs one full scheduled-mode sync.
func (s *Service) RunScheduled(ctx context.Context) error {
	return s.engine.RunScheduled(ctx)
}

func (s *Service) loadOption(ctx context.Context, key string, out any) error {
	raw, ok, err := s.opts.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load option %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode option %s: %w", key, err)
	}
	return nil
}

func (s *Service) saveOption(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode option %s: %w", key, err)
	}
	return s.opts.Put(ctx, key, string(data))
}
