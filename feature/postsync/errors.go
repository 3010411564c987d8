package postsync

import "errors"

// Run-fatal error kinds. Each aborts the run after notifying; interactive
// callers only ever see a generic failure message.
var (
	// ErrMissingURL means no API URL is configured.
	ErrMissingURL = errors.New("postsync: api url not configured")
	// ErrBadStatus means the API answered with a non-200 status.
	ErrBadStatus = errors.New("postsync: unexpected api status")
	// ErrTimeout means the API call exceeded its timeout.
	ErrTimeout = errors.New("postsync: api request timed out")
	// ErrNetwork means the API call failed before a response arrived.
	ErrNetwork = errors.New("postsync: api request failed")
	// ErrNoRecords means no record collection was detected in the payload.
	ErrNoRecords = errors.New("postsync: no records detected in response")
	// ErrTitleMissing means a record resolved to an empty title. This is a
	// hard per-run stop: remaining records are not attempted.
	ErrTitleMissing = errors.New("postsync: record title missing")
)

// ErrUpsert wraps a per-record content-store failure. It is non-fatal in
// batch and manual modes; the engine notifies and moves to the next record.
var ErrUpsert = errors.New("postsync: content upsert failed")

// ErrValidation wraps rejected settings or attribute-map input so the HTTP
// layer can answer 400 instead of 500.
var ErrValidation = errors.New("postsync: invalid input")
