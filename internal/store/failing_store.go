package store

import (
	"context"
	"sync"
)

// FailingStore wraps a Store and fails writes of selected keys. Tests use it
// to check that a failed write surfaces as an error while state stays intact.
type FailingStore struct {
	Store

	mu       sync.Mutex
	failures map[string]error
}

func NewFailingStore(inner Store) *FailingStore {
	return &FailingStore{
		Store:    inner,
		failures: map[string]error{},
	}
}

// FailSet makes every following Set of key return err. A nil err heals the key.
func (f *FailingStore) FailSet(key string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.failures, key)
		return
	}
	f.failures[key] = err
}

func (f *FailingStore) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	err := f.failures[key]
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.Store.Set(ctx, key, value)
}
