package storage

import (
	"fmt"
	"path/filepath"
)

// Backend kinds accepted by Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// Open builds the backend of the given kind rooted at dir, wrapped with a
// quota when quota is positive.
func Open(kind, dir string, quota int64) (Backend, error) {
	var (
		b   Backend
		err error
	)
	switch kind {
	case KindFile:
		b, err = NewFile(dir)
	case KindSQLite:
		b, err = NewSQLite(filepath.Join(dir, "trainer.db"))
	case KindMemory:
		b = NewMemory()
	default:
		return nil, fmt.Errorf("unknown storage kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return WithQuota(b, quota), nil
}
