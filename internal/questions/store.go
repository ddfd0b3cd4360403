package questions

import (
	"sync"

	"github.com/google/uuid"

	"github.com/quizsmith/backend/internal/models"
)

// Store holds each browser session's working question list in memory, in
// insertion order. Nothing survives a restart; that is the design, not an
// omission. The mutex guards concurrent handlers, not concurrent generation
// attempts — the UI serializes those.
type Store struct {
	mu    sync.Mutex
	lists map[string][]models.QuestionRecord
}

func NewStore() *Store {
	return &Store{lists: make(map[string][]models.QuestionRecord)}
}

// Append adds records to the session's list, assigning each a fresh ID, and
// returns the stored copies.
func (s *Store) Append(sessionID string, records ...models.QuestionRecord) []models.QuestionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]models.QuestionRecord, 0, len(records))
	for _, rec := range records {
		rec.ID = uuid.NewString()
		s.lists[sessionID] = append(s.lists[sessionID], rec)
		stored = append(stored, rec)
	}
	return stored
}

// List returns a copy of the session's question list in insertion order.
func (s *Store) List(sessionID string) []models.QuestionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[sessionID]
	out := make([]models.QuestionRecord, len(list))
	copy(out, list)
	return out
}

// Remove deletes one question by ID, reporting whether it existed.
func (s *Store) Remove(sessionID, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[sessionID]
	for i, rec := range list {
		if rec.ID == id {
			s.lists[sessionID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops the session's entire list.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, sessionID)
}
