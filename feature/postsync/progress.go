package postsync

import (
	"context"
	"fmt"

	"post-sync/core/payload"
)

// Option-store keys owned by the sync feature.
const (
	OptionKeySettings     = "postsync:settings"
	OptionKeyAttributeMap = "postsync:attr_map"
	OptionKeyResponseTail = "postsync:response_tail"
)

// OptionStore is the slice of the options store the sync feature needs.
type OptionStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ProgressStore persists the unconsumed record tail between chunked
// invocations. The tail is stored re-wrapped in the shape it was detected
// from, so resumption re-detects an identical collection under the same
// container key.
type ProgressStore struct {
	opts OptionStore
}

// NewProgressStore wraps an option store.
func NewProgressStore(opts OptionStore) *ProgressStore {
	return &ProgressStore{opts: opts}
}

// Load returns the persisted tail as a re-detectable payload. ok is false
// when no tail is stored.
func (p *ProgressStore) Load(ctx context.Context) (payload.Value, bool, error) {
	raw, ok, err := p.opts.Get(ctx, OptionKeyResponseTail)
	if err != nil || !ok {
		return payload.Null(), false, err
	}
	v, err := payload.DecodeJSON([]byte(raw))
	if err != nil {
		return payload.Null(), false, fmt.Errorf("decode persisted tail: %w", err)
	}
	return v, true, nil
}

// Save persists the remaining records, or clears the stored tail when the
// collection is exhausted.
func (p *ProgressStore) Save(ctx context.Context, col payload.Collection) error {
	if len(col.Records) == 0 {
		return p.Clear(ctx)
	}
	data, err := payload.EncodeJSON(col.Rewrap())
	if err != nil {
		return fmt.Errorf("encode tail: %w", err)
	}
	return p.opts.Put(ctx, OptionKeyResponseTail, string(data))
}

// Clear removes any stored tail.
func (p *ProgressStore) Clear(ctx context.Context) error {
	return p.opts.Delete(ctx, OptionKeyResponseTail)
}
