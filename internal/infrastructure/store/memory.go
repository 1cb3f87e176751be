package store

import (
	"sync"
	"time"
)

// Artifact is an exported document held for download
type Artifact struct {
	Content     []byte
	ContentType string
}

// ArtifactStore is an in-memory store for export artifacts with expiration.
// Artifacts live only as long as the process; exports are regenerable from
// session state on demand.
type ArtifactStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]*artifactItem
}

type artifactItem struct {
	artifact   Artifact
	expireTime time.Time
}

// NewArtifactStore creates a store whose artifacts expire after ttl
func NewArtifactStore(ttl time.Duration) *ArtifactStore {
	s := &ArtifactStore{
		ttl:   ttl,
		items: make(map[string]*artifactItem),
	}

	// Cleanup goroutine removes expired artifacts
	go s.sweepExpired()

	return s
}

// Put stores an artifact under the given filename
func (s *ArtifactStore) Put(filename string, artifact Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[filename] = &artifactItem{
		artifact:   artifact,
		expireTime: time.Now().Add(s.ttl),
	}
}

// Get retrieves an artifact by filename
func (s *ArtifactStore) Get(filename string) (Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[filename]
	if !exists {
		return Artifact{}, false
	}

	if time.Now().After(item.expireTime) {
		return Artifact{}, false
	}

	return item.artifact, true
}

// Delete removes an artifact
func (s *ArtifactStore) Delete(filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, filename)
}

// Clear removes all artifacts
func (s *ArtifactStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*artifactItem)
}

// sweepExpired periodically removes expired artifacts
func (s *ArtifactStore) sweepExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for filename, item := range s.items {
			if now.After(item.expireTime) {
				delete(s.items, filename)
			}
		}
		s.mu.Unlock()
	}
}
