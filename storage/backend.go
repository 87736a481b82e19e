package storage

import "errors"

var (
	// ErrNotFound is returned by a Backend when the key holds no value.
	ErrNotFound = errors.New("storage: key not found")
	// ErrQuotaExceeded is returned by a Backend when a write would exceed its capacity.
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
	// ErrUnavailable is returned by a Backend that cannot be accessed.
	ErrUnavailable = errors.New("storage: backend unavailable")
)

// Backend is a raw key/value store.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}
