// Package store is the host-integration layer: an in-memory keyspace
// mapping keys to documents. It provides the exclusive-write-per-key
// serialization the document core assumes, and streams the keyspace
// through the persistence codec for snapshots.
package store

import (
	"sync"

	"github.com/RedisLabsModules/RedisDoc/doc"
)

type Store struct {
	mu   sync.RWMutex
	keys map[string]*doc.Document
}

func New() *Store {
	return &Store{keys: make(map[string]*doc.Document)}
}

// View runs fn with shared access to the document under key, or with nil
// when the key is absent.
func (s *Store) View(key string, fn func(*doc.Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.keys[key])
}

// Update runs fn with exclusive access to the document under key, or with
// nil when the key is absent. The document fn returns is installed under
// the key; returning nil removes it. No change is made when fn fails.
func (s *Store) Update(key string, fn func(*doc.Document) (*doc.Document, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := fn(s.keys[key])
	if err != nil {
		return err
	}
	if d == nil {
		delete(s.keys, key)
		return nil
	}
	s.keys[key] = d
	return nil
}

// Delete removes the key and reports whether it existed.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[key]
	delete(s.keys, key)
	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]string, 0, len(s.keys))
	for k := range s.keys {
		res = append(res, k)
	}
	return res
}
