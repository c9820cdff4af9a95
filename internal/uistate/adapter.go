package uistate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Adapter persists State. Load returns Initial when nothing has been saved.
type Adapter interface {
	Load() (State, error)
	Save(State) error
}

// MemoryAdapter keeps state for the life of the process.
type MemoryAdapter struct {
	mu    sync.Mutex
	state State
	saves int
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{state: Initial()}
}

func (m *MemoryAdapter) Load() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, nil
}

func (m *MemoryAdapter) Save(s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *MemoryAdapter) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// FileAdapter stores state as a JSON document, replaced atomically on save.
type FileAdapter struct {
	path string
}

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Path returns the backing file.
func (f *FileAdapter) Path() string {
	return f.path
}

func (f *FileAdapter) Load() (State, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Initial(), nil
	}
	if err != nil {
		return Initial(), err
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return Initial(), fmt.Errorf("decode ui state %s: %w", f.path, err)
	}
	return s, nil
}

func (f *FileAdapter) Save(s State) error {
	if f.path == "" {
		return errors.New("ui state file not configured")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(f.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
