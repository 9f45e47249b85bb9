package memory

import (
	"context"
	"sync"

	"course-quiz-service/internal/domain"
)

// ProgressStore is an in-memory implementation of app.ProgressStore. It keeps
// the encoded JSON so it behaves like the persistent stores.
type ProgressStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		records: make(map[string][]byte),
	}
}

func (s *ProgressStore) Save(_ context.Context, courseID string, state domain.SessionState) error {
	data, err := domain.EncodeProgress(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[courseID] = data
	return nil
}

func (s *ProgressStore) Load(_ context.Context, courseID string) (domain.SessionState, bool, error) {
	s.mu.RLock()
	data, ok := s.records[courseID]
	s.mu.RUnlock()
	if !ok {
		return domain.SessionState{}, false, nil
	}
	return domain.DecodeProgress(data)
}

// Put stores raw bytes for a course, e.g. to simulate corrupted data.
func (s *ProgressStore) Put(courseID string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[courseID] = raw
}
