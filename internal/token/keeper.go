package token

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// StorageKey is the fixed key the current token is stored under.
const StorageKey = "hyperconnect.authToken"

var ErrKeyNotFound = errors.New("key not found")

// Storage is client-local persistent key/value storage.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// FileStorage keeps one file per key under dir.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key))
}

func (s *FileStorage) Get(key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), nil
}

func (s *FileStorage) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

func (s *FileStorage) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Keeper persists the current token. Storage failures are logged and
// swallowed: a client without working storage just loses the session on
// restart.
type Keeper struct {
	storage Storage
	log     zerolog.Logger
}

func NewKeeper(storage Storage, log zerolog.Logger) *Keeper {
	return &Keeper{storage: storage, log: log}
}

func (k *Keeper) Persist(token string) {
	if err := k.storage.Set(StorageKey, token); err != nil {
		k.log.Warn().Err(err).Msg("could not persist auth token")
	}
}

// Read returns the stored token, or "" when there is none.
func (k *Keeper) Read() string {
	token, err := k.storage.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			k.log.Warn().Err(err).Msg("could not read auth token")
		}
		return ""
	}
	return token
}

func (k *Keeper) Clear() {
	if err := k.storage.Remove(StorageKey); err != nil {
		k.log.Warn().Err(err).Msg("could not clear auth token")
	}
}
