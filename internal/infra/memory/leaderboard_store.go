package memory

import (
	"context"
	"sync"

	"course-quiz-service/internal/domain"
)

// LeaderboardStore keeps ranked attempts per course in memory.
type LeaderboardStore struct {
	limit   int
	mu      sync.RWMutex
	entries map[string][]domain.LeaderboardEntry
}

func NewLeaderboardStore(limit int) *LeaderboardStore {
	if limit <= 0 {
		limit = domain.DefaultLeaderboardSize
	}
	return &LeaderboardStore{
		limit:   limit,
		entries: make(map[string][]domain.LeaderboardEntry),
	}
}

func (s *LeaderboardStore) RecordAttempt(_ context.Context, courseID string, entry domain.LeaderboardEntry) ([]domain.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ranked := domain.InsertLeaderboard(s.entries[courseID], entry, s.limit)
	s.entries[courseID] = ranked
	return copyEntries(ranked), nil
}

func (s *LeaderboardStore) Get(_ context.Context, courseID string) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyEntries(s.entries[courseID]), nil
}

func copyEntries(entries []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	out := make([]domain.LeaderboardEntry, len(entries))
	copy(out, entries)
	return out
}
