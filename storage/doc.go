// Package storage implements the best-effort key/value persistence used by
// the trainer to keep ranges and presets between runs.
//
// # Backends
//
// A Backend stores raw bytes under string keys. Three are provided: an
// in-memory map, a directory holding one JSON file per key, and a SQLite
// database. WithQuota wraps any of them with a byte limit.
//
// # Store
//
// Store layers JSON encoding and the failure policy on top of a Backend:
//   - reads never fail: absent, unreadable or undecodable values yield the
//     caller's fallback, and undecodable values are evicted
//   - writes never fail: a quota error triggers one sweep of the application
//     namespace and one retry, anything else is logged and dropped
package storage
