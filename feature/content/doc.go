// Package content implements the local content store that synced records
// land in.
//
// It owns three tables: posts, terms (categories and tags, unique per
// taxonomy), and post metas (custom fields). The Store interface is what the
// sync engine programs against:
//
//   - FindByTitle: exact-title lookup backing the update-existing behavior.
//   - Upsert: create or update a post, replacing terms and meta atomically.
//   - EnsureTerms: create-if-absent term resolution.
package content
