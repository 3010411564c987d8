// Package postsync implements the sync engine: it fetches records from a
// configured external API, maps arbitrary JSON or XML fields onto the
// content schema through colon-delimited paths, and reconciles the records
// into the content store in resumable chunks.
//
// The engine runs in four modes. Scheduled runs drain the whole collection
// on a timer; manual runs consume one chunk per HTTP call and persist the
// unconsumed tail between calls; the single-record test commits exactly one
// record; the connection test fetches and reports without creating content.
// All modes share one run mutex, so at most one sync executes at a time.
package postsync
