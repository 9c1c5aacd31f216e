package store

import (
	"context"
	"sync"

	"mindtree/internal/model"
)

// MemoryStore is a non-persistent DocumentStore for local mode and tests.
type MemoryStore struct {
	mu  sync.RWMutex
	doc *model.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith starts from a copy of doc instead of the default.
func NewMemoryStoreWith(doc model.Document) *MemoryStore {
	d := normalize(doc.Clone())
	return &MemoryStore{doc: &d}
}

func (s *MemoryStore) Load(ctx context.Context) model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return model.NewDocument()
	}
	return s.doc.Clone()
}

func (s *MemoryStore) Save(ctx context.Context, doc model.Document) error {
	d := normalize(doc.Clone())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = &d
	return nil
}

var _ DocumentStore = (*MemoryStore)(nil)
