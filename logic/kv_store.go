package logic

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"tunefed/dal"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_kv_store.go -package mocks tunefed/logic IKVStore

// IKVStore is a small persistent string map owned by one viewer.
type IKVStore interface {
	Get(key string) (val string, found bool, err error)
	Set(key, val string) error
	Delete(key string) error
}

type repoKVStore struct {
	repo      dal.IRepo
	namespace string
}

// NewRepoKVStore stores entries in the database's kv_store table, under the given namespace.
func NewRepoKVStore(repo dal.IRepo, namespace string) IKVStore {
	return &repoKVStore{repo, namespace}
}

func (s *repoKVStore) Get(key string) (string, bool, error) {
	return s.repo.KVGet(s.namespace, key)
}

func (s *repoKVStore) Set(key, val string) error {
	return s.repo.KVSet(s.namespace, key, val)
}

func (s *repoKVStore) Delete(key string) error {
	return s.repo.KVDelete(s.namespace, key)
}

type fileKVStore struct {
	path string
	mu   sync.Mutex
}

// NewFileKVStore keeps all entries in a single JSON object in the file at path.
func NewFileKVStore(path string) IKVStore {
	return &fileKVStore{path: path}
}

func (s *fileKVStore) load() (map[string]string, error) {
	res := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *fileKVStore) save(vals map[string]string) error {
	data, err := json.Marshal(vals)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmpPath := s.path + ".tmp"
	if err = os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}

func (s *fileKVStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vals, err := s.load()
	if err != nil {
		return "", false, err
	}
	val, found := vals[key]
	return val, found, nil
}

func (s *fileKVStore) Set(key, val string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vals, err := s.load()
	if err != nil {
		// Unreadable file is overwritten
		vals = make(map[string]string)
	}
	vals[key] = val
	return s.save(vals)
}

func (s *fileKVStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vals, err := s.load()
	if err != nil {
		vals = make(map[string]string)
	}
	delete(vals, key)
	return s.save(vals)
}
