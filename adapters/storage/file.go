package storage

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rotisserie/eris"
)

// FileKV keeps every key in one JSON object file. A missing file is an
// empty store. Writes go to a temp file that is renamed over the original.
type FileKV struct {
	path string
	mu   sync.RWMutex
}

// NewFileKV creates a file store at path, creating its directory
func NewFileKV(path string) (*FileKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, eris.Wrap(err, "file kv: create directory")
	}
	return &FileKV{path: path}, nil
}

// ErrCorrupt marks a backing file that exists but does not decode.
var ErrCorrupt = stderrors.New("store file is corrupt")

func (s *FileKV) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *FileKV) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if stderrors.Is(err, ErrCorrupt) {
		// rewrite from scratch so the next save repairs the file
		values, err = make(map[string]string), nil
	}
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return eris.Wrap(err, "file kv: marshal")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return eris.Wrapf(err, "file kv: write %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return eris.Wrapf(err, "file kv: replace %s", s.path)
	}
	return nil
}

func (s *FileKV) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, eris.Wrapf(err, "file kv: read %s", s.path)
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("file kv: decode %s: %w: %v", s.path, ErrCorrupt, err)
	}
	return values, nil
}
