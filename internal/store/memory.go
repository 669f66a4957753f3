package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/myokyal/loopify/internal/returns"
)

// MemoryStore is an in-memory Store used by tests and by dev mode when no
// Firebase credentials are configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*returns.Request
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{records: make(map[string]*returns.Request)}
}

// Create stores a copy of the request under a generated ID.
func (s *MemoryStore) Create(ctx context.Context, req *returns.Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	req.ID = id
	req.Status = returns.StatusPending
	req.CreatedAt = time.Now().UTC()

	stored := *req
	stored.Photo = "" // raw photo bytes are never persisted in the record
	s.records[id] = &stored
	return id, nil
}

// SetPhotoURL records the uploaded photo location.
func (s *MemoryStore) SetPhotoURL(ctx context.Context, id, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	rec.PhotoURL = url
	return nil
}

// Get fetches a copy of a stored return.
func (s *MemoryStore) Get(ctx context.Context, id string) (*returns.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

// List returns all stored returns, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]*returns.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*returns.Request, 0, len(s.records))
	for _, rec := range s.records {
		cp := *rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
