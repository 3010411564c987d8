// Package metrics registers the Prometheus collectors exposed on /metrics:
// sync run counts by mode and outcome, per-record upsert outcomes, and run
// durations.
package metrics
