package storage

import (
	"context"
	"errors"
	"sync"
)

// MemoryUploader keeps photos in a map. Used by tests and dev mode.
type MemoryUploader struct {
	mu      sync.RWMutex
	objects map[string][]byte

	// FailNext makes the next upload fail, for exercising the
	// partial-failure path in tests.
	FailNext bool
}

// NewMemory creates an empty in-memory uploader.
func NewMemory() *MemoryUploader {
	return &MemoryUploader{objects: make(map[string][]byte)}
}

// UploadPhoto stores the photo bytes and returns a synthetic URL.
func (u *MemoryUploader) UploadPhoto(ctx context.Context, returnID string, data []byte) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.FailNext {
		u.FailNext = false
		return "", errors.New("upload failed")
	}

	path := ObjectPath(returnID)
	stored := make([]byte, len(data))
	copy(stored, data)
	u.objects[path] = stored
	return "memory://" + path, nil
}

// Len returns the number of stored objects.
func (u *MemoryUploader) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.objects)
}

// Object returns a stored photo by its path.
func (u *MemoryUploader) Object(path string) ([]byte, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	data, ok := u.objects[path]
	return data, ok
}
