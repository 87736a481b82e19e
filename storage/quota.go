package storage

import (
	"errors"
	"fmt"
)

// Quota wraps a Backend and rejects writes that would push the total size of
// the stored values past a limit.
type Quota struct {
	Backend
	max int64
}

// WithQuota limits b to maxBytes of stored values. A non-positive limit
// returns b unchanged.
func WithQuota(b Backend, maxBytes int64) Backend {
	if maxBytes <= 0 {
		return b
	}
	return &Quota{Backend: b, max: maxBytes}
}

// Set fails with ErrQuotaExceeded when the new value does not fit.
func (q *Quota) Set(key string, value []byte) error {
	used, err := q.usage(key)
	if err != nil {
		return err
	}
	if used+int64(len(value)) > q.max {
		return fmt.Errorf("%w: %d of %d bytes used, %s needs %d", ErrQuotaExceeded, used, q.max, key, len(value))
	}
	return q.Backend.Set(key, value)
}

// usage sums the sizes of every stored value except the one under skip.
func (q *Quota) usage(skip string) (int64, error) {
	keys, err := q.Backend.Keys()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, k := range keys {
		if k == skip {
			continue
		}
		v, err := q.Backend.Get(k)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return 0, err
		}
		total += int64(len(v))
	}
	return total, nil
}
