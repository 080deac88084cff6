package database

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store for tests and local development. Documents
// take a BSON marshal/unmarshal round-trip on insert so tag handling, null
// fields and generated ObjectIDs behave like the real driver.
type Memory struct {
	mu    sync.RWMutex
	colls map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{colls: make(map[string][]bson.M)}
}

func (s *Memory) Insert(_ context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("decode document: %w", err)
	}
	id := primitive.NewObjectID()
	m["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.colls[collection] = append(s.colls[collection], m)
	return id.Hex(), nil
}

func (s *Memory) Find(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]bson.M, 0, len(s.colls[collection]))
	for _, d := range s.colls[collection] {
		if matches(d, filter) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Memory) CollectionNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.colls))
	for name := range s.colls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// matches implements the only filter shape the API uses: equality on
// top-level fields. Nil/empty means "all".
func matches(d bson.M, filter bson.M) bool {
	for k, want := range filter {
		if d[k] != want {
			return false
		}
	}
	return true
}
