// Package options implements the persisted key/value store holding the API
// settings, the attribute map, and the unconsumed response tail between
// chunked sync invocations.
//
// Values are opaque JSON text keyed by fixed names owned by the sync
// feature. Reads go through an in-memory TTL cache (patrickmn/go-cache);
// writes and deletes invalidate synchronously, so a sync run always observes
// its own progress updates.
package options
