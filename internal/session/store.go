package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is the single source of truth for the persisted credential. Exactly
// one record exists per store; screens never touch the backing storage
// directly (they go through Manager).
type Store interface {
	// Get returns the raw stored token, or "" when nothing is stored.
	Get() (string, error)
	Set(token string) error
	Clear() error
	// OnChange registers a callback fired after every Set or Clear.
	OnChange(fn func())
}

type record struct {
	Token string `json:"token"`
}

// FileStore keeps the credential in a single JSON file. Stored content may
// be the JSON record or a bare encoded token; both are accepted on read.
type FileStore struct {
	path string

	mu   sync.Mutex
	subs []func()
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return decodeStored(data), nil
}

func (s *FileStore) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(record{Token: token})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	s.notify()
	return nil
}

func (s *FileStore) OnChange(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *FileStore) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// MemoryStore is the in-memory substitute used in tests.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	subs  []func()
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	s.token = token
	subs := append([]func(){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
	return nil
}

func (s *MemoryStore) Clear() error { return s.Set("") }

func (s *MemoryStore) OnChange(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func decodeStored(data []byte) string {
	var rec record
	if err := json.Unmarshal(data, &rec); err == nil && rec.Token != "" {
		return rec.Token
	}
	return strings.TrimSpace(string(data))
}
