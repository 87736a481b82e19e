// Package presets manages named snapshots of the range matrices and the
// pointer to the preset the user last activated.
//
// The active pointer is a plain id: it is looked up in the collection every
// time it is used, and cleared when the preset it names is deleted.
package presets
