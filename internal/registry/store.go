package registry

import "sync"

// Store is an in-memory canonical-name registry. Entries keep their load
// order, since resolution is positional over the registry. Safe for
// concurrent use; callers appending while resolving get a consistent
// snapshot from All.
type Store struct {
	mu    sync.RWMutex
	names []string
}

func NewStore(names ...string) *Store {
	s := &Store{}
	s.Add(names...)
	return s
}

// Add appends names to the registry, skipping verbatim duplicates.
func (s *Store) Add(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		if name == "" {
			continue
		}
		if s.contains(name) {
			continue
		}
		s.names = append(s.names, name)
	}
}

// All returns a copy of the registry in load order.
func (s *Store) All() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}

func (s *Store) contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}
