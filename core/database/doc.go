// Package database manages the relational database connection that backs
// the content store and the options store.
//
// MySQL is the production driver. The sqlite driver (with Name ":memory:")
// is used by tests and lightweight local setups; both go through GORM, so
// the rest of the application is driver-agnostic.
package database
