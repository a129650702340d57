package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory store for development and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]*Document)}
}

// Get retrieves a document by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, NotFound(id)
	}
	cp := *doc
	return &cp, nil
}

// List returns all documents, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		cp := *doc
		docs = append(docs, &cp)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	return docs, nil
}

// Save inserts or replaces a document.
func (s *MemoryStore) Save(ctx context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.UpdatedAt = time.Now().UTC()
	cp := *doc
	s.docs[doc.ID] = &cp
	return nil
}

// Delete removes a document.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return NotFound(id)
	}
	delete(s.docs, id)
	return nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
