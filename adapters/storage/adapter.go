// Package storage persists user-added vendors in a string key-value store.
// Supports multiple backends: memory, a single JSON file, SQLite.
package storage

import (
	"context"
	"io"

	"tariff-compare/internal/config"
	"tariff-compare/internal/errors"
)

// KV is a string key-value store. Implementations are used by a single
// client at a time; the last Set wins.
type KV interface {
	// Get returns the value under key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the backend selected by cfg. The returned closer releases the
// backend's resources and is always non-nil on success.
func Open(cfg config.StoreConfig) (KV, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryKV(), nopCloser{}, nil
	case config.BackendFile:
		kv, err := NewFileKV(cfg.Path)
		if err != nil {
			return nil, nil, errors.Storage("open file store", err)
		}
		return kv, nopCloser{}, nil
	case config.BackendSQLite:
		kv, err := NewSQLiteKV(cfg.Path)
		if err != nil {
			return nil, nil, errors.Storage("open sqlite store", err)
		}
		return kv, kv, nil
	default:
		return nil, nil, errors.Config("unknown store backend: " + cfg.Backend)
	}
}
