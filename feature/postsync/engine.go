package postsync

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	syncmetrics "post-sync/core/metrics"
	"post-sync/core/notify"
	"post-sync/core/payload"
	"post-sync/core/transport"
	"post-sync/feature/content"
	"post-sync/feature/postsync/models"
)

// Mode selects which run variant is executing. It only changes chunking and
// persistence behavior; record mapping is identical across modes.
type Mode string

const (
	// ModeScheduled drains the whole collection in one run.
	ModeScheduled Mode = "scheduled"
	// ModeManual processes one chunk per call and persists the tail for
	// the next call.
	ModeManual Mode = "manual"
	// ModeTestRecord commits exactly one record, then stops.
	ModeTestRecord Mode = "test_record"
	// ModeTestConnection fetches and reports without touching content.
	ModeTestConnection Mode = "test_connection"
)

// DefaultChunkSize is how many records one interactive round-trip consumes.
const DefaultChunkSize = 2

// Engine drives sync runs: load settings, fetch or resume, map records, and
// reconcile them into the content store. At most one run executes at a time;
// the mutex serializes interactive and scheduled callers.
type Engine struct {
	chunkSize int
	opts      OptionStore
	progress  *ProgressStore
	client    transport.Client
	store     content.Store
	notifier  notify.Notifier
	metrics   *syncmetrics.Sync
	logger    *zap.Logger
	sanitizer *bluemonday.Policy

	mu sync.Mutex
}

// NewEngine wires the sync engine to its collaborators.
func NewEngine(
	chunkSize int,
	opts OptionStore,
	client transport.Client,
	store content.Store,
	notifier notify.Notifier,
	metrics *syncmetrics.Sync,
	logger *zap.Logger,
) *Engine {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Engine{
		chunkSize: chunkSize,
		opts:      opts,
		progress:  NewProgressStore(opts),
		client:    client,
		store:     store,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// RunScheduled executes one full scheduled run, blocking until any current
// run finishes.
func (e *Engine) RunScheduled(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.observed(ctx, ModeScheduled, false)
	return err
}

// RunScheduledIfIdle executes a scheduled run unless another run is already
// in flight, in which case it reports false and does nothing. The scheduler
// uses this so a slow interactive sync never queues up ticker runs behind it.
func (e *Engine) RunScheduledIfIdle(ctx context.Context) (bool, error) {
	if !e.mu.TryLock() {
		return false, nil
	}
	defer e.mu.Unlock()
	_, err := e.observed(ctx, ModeScheduled, false)
	return true, err
}

// ManualChunk consumes one chunk of records and persists the remainder.
// initial marks the first call of an interactive sequence, which always
// fetches fresh instead of resuming a stale tail.
func (e *Engine) ManualChunk(ctx context.Context, initial bool) (*models.ChunkReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.observed(ctx, ModeManual, initial)
}

// TestSingleRecord commits exactly one record. A nil error means the record
// landed in the content store.
func (e *Engine) TestSingleRecord(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.observed(ctx, ModeTestRecord, false)
	return err
}

// TestConnection calls the API with the stored settings and reports what came
// back. It never creates content, never resumes a tail, and never notifies.
func (e *Engine) TestConnection(ctx context.Context) (*models.ConnectionReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	started := time.Now()
	report, err := e.testConnection(ctx)
	e.metrics.RunDuration.Observe(time.Since(started).Seconds())
	e.metrics.Runs.WithLabelValues(string(ModeTestConnection), outcomeLabel(err == nil && report != nil && report.Success)).Inc()
	return report, err
}

func (e *Engine) testConnection(ctx context.Context) (*models.ConnectionReport, error) {
	settings, _, err := e.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(settings.URL) == "" {
		return &models.ConnectionReport{
			Message: "The API URL not found. Please ensure the API settings are configured correctly.",
		}, nil
	}

	report := &models.ConnectionReport{Configured: true}
	v, resp, err := e.fetch(ctx, settings)
	if resp != nil {
		report.StatusCode = resp.StatusCode
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrBadStatus):
			report.Message = resp.Status
		case errors.Is(err, payload.ErrMalformed):
			report.Message = "The API responded but the body could not be decoded."
		default:
			report.Message = err.Error()
		}
		return report, nil
	}

	report.Success = true
	report.Message = "API connection successful."
	report.Payload = v
	return report, nil
}

// observed wraps a run with duration and outcome metrics.
func (e *Engine) observed(ctx context.Context, mode Mode, initial bool) (*models.ChunkReport, error) {
	started := time.Now()
	report, err := e.run(ctx, mode, initial)
	e.metrics.RunDuration.Observe(time.Since(started).Seconds())
	e.metrics.Runs.WithLabelValues(string(mode), outcomeLabel(err == nil)).Inc()
	return report, err
}

func outcomeLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}

// run is the shared state machine behind scheduled, manual, and test-record
// sync. The caller must hold the run mutex.
func (e *Engine) run(ctx context.Context, mode Mode, initial bool) (*models.ChunkReport, error) {
	settings, attr, err := e.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(settings.URL) == "" {
		e.notifier.Notify(ctx, notify.KindAPIURLMissing, nil)
		return nil, ErrMissingURL
	}

	col, err := e.collect(ctx, settings, mode, initial)
	if err != nil {
		return nil, err
	}
	if len(col.Records) == 0 {
		e.notifier.Notify(ctx, notify.KindNoRecords, nil)
		return nil, ErrNoRecords
	}

	return e.consume(ctx, mode, attr, col)
}

// collect returns the record collection for this run: the persisted tail
// when one exists, a fresh API fetch otherwise. The first call of an
// interactive sequence always fetches fresh so a stale tail from an aborted
// earlier sync cannot shadow current API data.
func (e *Engine) collect(ctx context.Context, settings models.ApiSettings, mode Mode, initial bool) (payload.Collection, error) {
	if !(mode == ModeManual && initial) {
		tail, ok, err := e.progress.Load(ctx)
		if err != nil {
			e.logger.Warn("Failed to load persisted sync tail, refetching", zap.Error(err))
		}
		if ok {
			e.logger.Info("Resuming sync from persisted tail")
			return payload.DetectCollection(tail), nil
		}
	}

	v, resp, err := e.fetch(ctx, settings)
	if err != nil {
		e.notifyFetchFailure(ctx, resp, err)
		return payload.Collection{}, err
	}
	return payload.DetectCollection(v), nil
}

// fetch performs one API call and decodes the body, classifying failures
// into the engine's error kinds.
func (e *Engine) fetch(ctx context.Context, settings models.ApiSettings) (payload.Value, *transport.Response, error) {
	req, err := BuildRequest(settings)
	if err != nil {
		return payload.Null(), nil, err
	}

	resp, err := e.client.Send(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return payload.Null(), nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return payload.Null(), nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode != 200 {
		return payload.Null(), resp, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	v, err := payload.Decode(resp.Headers.Get("Content-Type"), resp.Body)
	if err != nil {
		return payload.Null(), resp, err
	}
	return v, resp, nil
}

func (e *Engine) notifyFetchFailure(ctx context.Context, resp *transport.Response, err error) {
	switch {
	case errors.Is(err, ErrBadStatus):
		e.notifier.Notify(ctx, notify.KindBadStatus, map[string]string{
			"Response Code":    strconv.Itoa(resp.StatusCode),
			"Response Message": resp.Status,
		})
	case errors.Is(err, payload.ErrMalformed):
		e.notifier.Notify(ctx, notify.KindMalformed, map[string]string{
			"Response Code": strconv.Itoa(resp.StatusCode),
		})
	default:
		// Timeouts and transport failures never produced a response, so
		// they are reported with a zero code.
		e.notifier.Notify(ctx, notify.KindBadStatus, map[string]string{
			"Response Code":    "0",
			"Response Message": err.Error(),
		})
	}
}

// consume walks the collection head-first, upserting records and trimming
// the tail. How far it walks depends on the mode; whatever is left is
// persisted so the next run picks up where this one stopped.
func (e *Engine) consume(ctx context.Context, mode Mode, attr models.AttributeMap, col payload.Collection) (*models.ChunkReport, error) {
	report := &models.ChunkReport{TotalItems: len(col.Records)}

	for len(col.Records) > 0 {
		mapped, err := e.mapRecord(attr, col.Records[0])
		if err != nil {
			// The offending record stays at the head of the persisted
			// tail so the failure is inspectable and reproducible.
			if mode != ModeTestRecord {
				if saveErr := e.progress.Save(ctx, col); saveErr != nil {
					e.logger.Error("Failed to persist sync tail", zap.Error(saveErr))
				}
			}
			e.notifier.Notify(ctx, notify.KindTitleMissing, map[string]string{
				"Title Path": attr.TitlePath,
			})
			return report, err
		}

		if err := e.upsert(ctx, attr, mapped); err != nil {
			e.metrics.Records.WithLabelValues("failed").Inc()
			e.logger.Error("Record upsert failed",
				zap.String("title", mapped.Title),
				zap.Error(err),
			)
			e.notifier.Notify(ctx, notify.KindUpsertFailed, map[string]string{
				"Post Title": mapped.Title,
				"Error":      err.Error(),
			})
			if mode == ModeTestRecord {
				return report, fmt.Errorf("%w: %v", ErrUpsert, err)
			}
		} else {
			e.metrics.Records.WithLabelValues("ok").Inc()
		}

		col.Records = col.Records[1:]
		report.Added++

		if mode == ModeTestRecord {
			break
		}
		if mode == ModeManual && report.Added >= e.chunkSize {
			break
		}
	}

	if err := e.progress.Save(ctx, col); err != nil {
		return report, fmt.Errorf("persist sync progress: %w", err)
	}

	e.logger.Info("Sync chunk complete",
		zap.String("mode", string(mode)),
		zap.Int("added", report.Added),
		zap.Int("total", report.TotalItems),
		zap.Int("remaining", len(col.Records)),
	)
	return report, nil
}

// upsert reconciles one mapped record into the content store. The title
// lookup only happens when the attribute map asks for updates; otherwise
// every record creates a new post, same titles included. Terms are resolved
// to ids first so the store can attach them in the same transaction.
func (e *Engine) upsert(ctx context.Context, attr models.AttributeMap, m *models.MappedRecord) error {
	var existing uint
	if attr.UpdateExisting {
		found, err := e.store.FindByTitle(ctx, m.Title, "post")
		if err != nil {
			return err
		}
		existing = found
	}

	var termIDs []uint
	if len(m.Categories) > 0 {
		ids, err := e.store.EnsureTerms(ctx, m.Categories, content.TaxonomyCategory)
		if err != nil {
			return err
		}
		termIDs = append(termIDs, ids...)
	}
	if len(m.Tags) > 0 {
		ids, err := e.store.EnsureTerms(ctx, m.Tags, content.TaxonomyTag)
		if err != nil {
			return err
		}
		termIDs = append(termIDs, ids...)
	}

	_, err := e.store.Upsert(ctx, &content.Record{
		ID:       existing,
		Title:    m.Title,
		Content:  m.Content,
		AuthorID: m.AuthorID,
		TermIDs:  termIDs,
		Meta:     m.CustomFields,
	})
	return err
}

// loadConfig reads the stored API settings and attribute map. Absent options
// decode to zero values; the run surfaces the missing URL itself.
func (e *Engine) loadConfig(ctx context.Context) (models.ApiSettings, models.AttributeMap, error) {
	var settings models.ApiSettings
	if err := e.loadOption(ctx, OptionKeySettings, &settings); err != nil {
		return settings, models.AttributeMap{}, err
	}
	var attr models.AttributeMap
	if err := e.loadOption(ctx, OptionKeyAttributeMap, &attr); err != nil {
		return settings, attr, err
	}
	return settings, attr, nil
}

func (e *Engine) loadOption(ctx context.Context, key string, out any) error {
	raw, ok, err := e.opts.Get(ctx, key)
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
