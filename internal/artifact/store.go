package artifact

import (
	"sync"

	"github.com/vk/onecheck/internal/label"
)

// Store is an in-memory ownership index, keyed by exec path. It implements
// Resolver and is populated while the build manifest is translated into
// artifacts.
type Store struct {
	mutex  sync.RWMutex
	owners map[string]label.Label
}

// NewStore creates an empty ownership index.
func NewStore() *Store {
	return &Store{owners: make(map[string]label.Label)}
}

// Put records the owning target for an artifact. A second Put for the same
// exec path overwrites the first; the manifest loader rejects duplicate
// declarations before they reach the store.
func (s *Store) Put(a *Artifact, owner label.Label) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.owners[a.ExecPath] = owner
}

// Owner implements Resolver.
func (s *Store) Owner(a *Artifact) (label.Label, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	owner, ok := s.owners[a.ExecPath]
	return owner, ok
}
