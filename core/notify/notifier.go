package notify

import (
	"context"

	"go.uber.org/zap"
)

// Kind identifies the failure being reported. Each kind maps to its own
// subject and message so the recipient can tell failures apart without
// reading logs.
type Kind string

const (
	// KindAPIURLMissing fires when a sync runs with no API URL configured.
	KindAPIURLMissing Kind = "api_url_missing"
	// KindBadStatus fires when the API answers with a non-200 status.
	KindBadStatus Kind = "bad_status"
	// KindMalformed fires when a 200 response body cannot be decoded.
	KindMalformed Kind = "malformed_response"
	// KindNoRecords fires when no record collection is detected in the payload.
	KindNoRecords Kind = "no_records"
	// KindTitleMissing fires when a record resolves to an empty title,
	// aborting the run.
	KindTitleMissing Kind = "title_missing"
	// KindUpsertFailed fires per record whose content-store upsert failed.
	KindUpsertFailed Kind = "upsert_failed"
)

// Notifier reports sync failures out of band. Implementations are
// fire-and-forget: a failed notification must never abort the sync run, so
// Notify returns nothing and implementations log their own errors.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, fields map[string]string)
}

// LogNotifier reports failures to the application log only. It is the
// fallback when no SMTP host is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the failure with its context fields.
func (n *LogNotifier) Notify(_ context.Context, kind Kind, fields map[string]string) {
	zapFields := []zap.Field{zap.String("kind", string(kind))}
	for name, value := range fields {
		zapFields = append(zapFields, zap.String(name, value))
	}
	n.logger.Warn("Sync failure notification", zapFields...)
}
