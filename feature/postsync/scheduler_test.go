package postsync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestScheduler_RunsOnCadence(t *testing.T) {
	f := newEngineFixture(t)
	f.seedConfig(t, defaultSettings(), defaultAttrMap())
	f.respond(postsBody("tick"))

	scheduler := NewScheduler(f.engine, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scheduler.Run(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return f.store.upsertCount() > 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_DisabledUntilReset(t *testing.T) {
	f := newEngineFixture(t)
	f.seedConfig(t, defaultSettings(), defaultAttrMap())
	f.respond(postsBody("tick"))

	scheduler := NewScheduler(f.engine, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scheduler.Run(ctx, 0)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, f.store.upsertCount())

	scheduler.Reset(10 * time.Millisecond)
	assert.Eventually(t, func() bool {
		return f.store.upsertCount() > 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_ResetKeepsLatestOnly(t *testing.T) {
	scheduler := NewScheduler(nil, zap.NewNop())
	scheduler.Reset(time.Minute)
	scheduler.Reset(time.Hour)

	select {
	case d := <-scheduler.reset:
		assert.Equal(t, time.Hour, d)
	default:
		t.Fatal("expected a pending reset")
	}
}
