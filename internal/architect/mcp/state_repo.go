package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/lifearchitect/internal/store"
)

// StateRepo provides the raw persisted dashboard documents.
type StateRepo interface {
	StoredKeys(ctx context.Context) ([]StoredKey, error)
}

// StoredKey describes one persisted document.
type StoredKey struct {
	Key   string
	Bytes int
	// Kind is the JSON kind of the document: array, object, string, number or bool.
	Kind string
}

type storeStateRepo struct {
	store store.Store
}

// NewStoreStateRepo returns a StateRepo reading from s.
func NewStoreStateRepo(s store.Store) StateRepo {
	return &storeStateRepo{store: s}
}

func (r *storeStateRepo) StoredKeys(ctx context.Context) ([]StoredKey, error) {
	snapshot, err := store.Snapshot(ctx, r.store)
	if err != nil {
		return nil, fmt.Errorf("snapshot store: %w", err)
	}

	var keys []StoredKey
	for _, k := range store.AllKeys {
		raw, ok := snapshot[k]
		if !ok {
			continue
		}
		keys = append(keys, StoredKey{
			Key:   k,
			Bytes: len(raw),
			Kind:  jsonKind(raw),
		})
	}
	return keys, nil
}

func jsonKind(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "invalid"
	}
	switch v.(type) {
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	}
	return "null"
}
