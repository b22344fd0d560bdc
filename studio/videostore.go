package studio

import (
	"sync"

	"github.com/google/uuid"
)

type videoEntry struct {
	data     []byte
	mimeType string
}

// VideoStore holds fetched video bytes in memory until the owning
// session resets or expires. Nothing is persisted.
type VideoStore struct {
	mu      sync.RWMutex
	entries map[string]videoEntry
}

func NewVideoStore() *VideoStore {
	return &VideoStore{entries: make(map[string]videoEntry)}
}

func (vs *VideoStore) Put(data []byte, mimeType string) string {
	id := uuid.New().String()
	vs.mu.Lock()
	vs.entries[id] = videoEntry{data: data, mimeType: mimeType}
	vs.mu.Unlock()
	return id
}

func (vs *VideoStore) Get(id string) (data []byte, mimeType string, ok bool) {
	vs.mu.RLock()
	entry, ok := vs.entries[id]
	vs.mu.RUnlock()
	return entry.data, entry.mimeType, ok
}

func (vs *VideoStore) Delete(id string) {
	if id == "" {
		return
	}
	vs.mu.Lock()
	delete(vs.entries, id)
	vs.mu.Unlock()
}

func (vs *VideoStore) Len() int {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return len(vs.entries)
}
