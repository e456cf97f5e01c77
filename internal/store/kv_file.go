package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"clothiq/internal/domain"
)

const (
	kvFile       = "storage.json"
	sealedKVFile = "storage.json.enc"
)

// FileKV keeps all keys in one JSON object on disk. Every write rewrites the
// file atomically. When a passphrase is set the object is sealed with
// scrypt + ChaCha20-Poly1305 before it is written.
type FileKV struct {
	path       string
	passphrase string
	params     scryptParams
	mu         sync.Mutex
}

// NewFileKV returns a plain FileKV stored under dir.
func NewFileKV(dir string) *FileKV {
	return &FileKV{path: filepath.Join(dir, kvFile)}
}

// NewSealedFileKV returns a FileKV under dir whose file is encrypted with a
// key derived from passphrase.
func NewSealedFileKV(dir, passphrase string) *FileKV {
	return &FileKV{
		path:       filepath.Join(dir, sealedKVFile),
		passphrase: passphrase,
		params:     defaultScryptParams(),
	}
}

// Path returns the backing file.
func (s *FileKV) Path() string { return s.path }

// Get returns the value stored under key.
func (s *FileKV) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *FileKV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = value
	return s.save(m)
}

// Delete removes key.
func (s *FileKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return s.save(m)
}

func (s *FileKV) load() (map[string]string, error) {
	m := make(map[string]string)
	b, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	if b == nil {
		return m, nil
	}
	if s.passphrase != "" {
		if b, err = open(s.passphrase, b); err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", s.path, err)
	}
	return m, nil
}

func (s *FileKV) save(m map[string]string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		if b, err = seal(s.passphrase, b, s.params); err != nil {
			return err
		}
	}
	return writeFile(s.path, b, 0o600)
}

// Compile-time assertion that FileKV implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*FileKV)(nil)
