package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
)

// Namespace prefixes every key owned by the trainer.
const Namespace = "poker-trainer-"

// Keys of the persisted state.
const (
	KeyRanges     = Namespace + "ranges"
	KeyPresets    = Namespace + "presets"
	KeyLastPreset = Namespace + "last-preset"
)

// Store is the JSON persistence adapter over a Backend.
type Store struct {
	backend   Backend
	namespace string
	logger    *slog.Logger
}

type option func(Store) Store

// WithLogger sets the logger receiving storage diagnostics.
func WithLogger(l *slog.Logger) option {
	return func(s Store) Store {
		s.logger = l
		return s
	}
}

// WithNamespace changes the prefix swept when the quota is exceeded.
func WithNamespace(ns string) option {
	return func(s Store) Store {
		s.namespace = ns
		return s
	}
}

func New(b Backend, opts ...option) *Store {
	s := Store{
		backend:   b,
		namespace: Namespace,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return &s
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Load decodes the value stored under key into out, which must be a non-nil
// pointer. It reports whether out was written; on false out is untouched.
func (s *Store) Load(key string, out any) bool {
	if key == "" {
		return false
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		s.logger.Error("invalid load target", "key", key, "type", fmt.Sprintf("%T", out))
		return false
	}

	data, err := s.backend.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		s.logger.Warn("storage is not available", "key", key, "error", err)
		return false
	}
	if len(data) == 0 {
		return false
	}

	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		s.logger.Error("error parsing stored value", "key", key, "error", err)
		if err := s.backend.Delete(key); err != nil {
			s.logger.Warn("failed to evict corrupted value", "key", key, "error", err)
		}
		return false
	}
	rv.Elem().Set(tmp.Elem())
	return true
}

// Get returns the value stored under key, or fallback.
func Get[T any](s *Store, key string, fallback T) T {
	var v T
	if !s.Load(key, &v) {
		return fallback
	}
	return v
}

// Save encodes value under key. Failures are logged, never returned.
func (s *Store) Save(key string, value any) {
	if key == "" {
		s.logger.Error("invalid storage key")
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("failed to encode value", "key", key, "error", err)
		return
	}

	err = s.backend.Set(key, data)
	if err == nil {
		return
	}
	if !errors.Is(err, ErrQuotaExceeded) {
		s.logger.Error("error saving value", "key", key, "error", err)
		return
	}

	s.logger.Error("storage quota exceeded, trying to clear some space", "key", key, "error", err)
	s.Clear(s.namespace)
	if err := s.backend.Set(key, data); err != nil {
		s.logger.Error("failed to make space in storage", "key", key, "error", err)
	}
}

// Clear removes every key starting with prefix. An empty prefix clears the
// store namespace.
func (s *Store) Clear(prefix string) {
	if prefix == "" {
		prefix = s.namespace
	}
	keys, err := s.backend.Keys()
	if err != nil {
		s.logger.Error("error clearing storage", "prefix", prefix, "error", err)
		return
	}
	for _, k := range keys {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if err := s.backend.Delete(k); err != nil {
			s.logger.Warn("failed to remove key", "key", k, "error", err)
		}
	}
}
