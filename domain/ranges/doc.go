// Package ranges holds the per-position hand selections being edited and
// keeps them persisted after every change.
package ranges
