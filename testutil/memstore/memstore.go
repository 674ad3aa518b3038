// Package memstore is a minimal in-memory implementation of
// cosmossdk.io/core/store's KVStoreService/KVStore, used by keeper tests
// that have no simapp to embed against.
package memstore

import (
	"bytes"
	"context"
	"sort"
	"sync"

	corestore "cosmossdk.io/core/store"
)

// Service is a KVStoreService backed by a single shared map, ignoring ctx:
// every OpenKVStore call in a test returns a view onto the same state.
type Service struct {
	store *Store
}

// NewService constructs a fresh, empty backing store and service.
func NewService() *Service {
	return &Service{store: newStore()}
}

func (s *Service) OpenKVStore(context.Context) corestore.KVStore {
	return s.store
}

// Store is a sorted, byte-keyed map guarded by a mutex.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func newStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[string(key)]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Store) Has(key []byte) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[string(key)]
	return ok, nil
}

func (s *Store) Set(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[string(key)] = v
	return nil
}

func (s *Store) Delete(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, string(key))
	return nil
}

func (s *Store) Iterator(start, end []byte) (corestore.Iterator, error) {
	return s.newIterator(start, end, false), nil
}

func (s *Store) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return s.newIterator(start, end, true), nil
}

func (s *Store) newIterator(start, end []byte, reverse bool) *iterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		b := []byte(k)
		if start != nil && bytes.Compare(b, start) < 0 {
			continue
		}
		if end != nil && bytes.Compare(b, end) >= 0 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = s.data[k]
	}

	return &iterator{keys: keys, values: values, start: start, end: end}
}

type iterator struct {
	keys   []string
	values [][]byte
	pos    int
	start  []byte
	end    []byte
}

func (it *iterator) Domain() (start, end []byte) { return it.start, it.end }
func (it *iterator) Valid() bool                 { return it.pos < len(it.keys) }
func (it *iterator) Next()                       { it.pos++ }
func (it *iterator) Key() []byte                 { return []byte(it.keys[it.pos]) }
func (it *iterator) Value() []byte               { return it.values[it.pos] }
func (it *iterator) Error() error                { return nil }
func (it *iterator) Close() error                { return nil }
