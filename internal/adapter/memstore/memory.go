package memstore

import (
	"sort"
	"sync"

	"fragdoc/internal/domain"
	"fragdoc/internal/port"
)

var _ port.FragmentStore = (*FragmentStore)(nil)

type FragmentStore struct {
	mu        sync.RWMutex
	fragments map[domain.FragmentKey]string
}

func NewFragmentStore() *FragmentStore {
	return &FragmentStore{
		fragments: make(map[domain.FragmentKey]string),
	}
}

func (s *FragmentStore) Append(key domain.FragmentKey, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fragments[key] += body
}

func (s *FragmentStore) Get(key domain.FragmentKey) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	body, ok := s.fragments[key]
	return body, ok
}

// Keys returns every key ordered by path, with the whole-file key first.
func (s *FragmentStore) Keys() []domain.FragmentKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]domain.FragmentKey, 0, len(s.fragments))
	for k := range s.fragments {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Path != keys[j].Path {
			return keys[i].Path < keys[j].Path
		}
		return keys[i].Name < keys[j].Name
	})
	return keys
}

func (s *FragmentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fragments)
}
