package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fieldset/trailhead/pkg/domain"
)

// Store implements ports.ResponseStore in process memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]domain.Answers
}

// NewStore creates an empty response store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]domain.Answers)}
}

// Save copies the answer map under the session ID.
func (s *Store) Save(ctx context.Context, sessionID string, answers domain.Answers) error {
	cp := make(domain.Answers, len(answers))
	for k, v := range answers {
		cp[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = cp
	return nil
}

// Load returns a copy of the stored answers.
func (s *Store) Load(ctx context.Context, sessionID string) (domain.Answers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answers, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	cp := make(domain.Answers, len(answers))
	for k, v := range answers {
		cp[k] = v
	}
	return cp, nil
}

// Delete removes a session. Deleting an unknown session is a no-op.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// List returns the known session IDs in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
