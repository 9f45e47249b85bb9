package memory

import (
	"context"
	"sync"

	"course-quiz-service/internal/domain"
)

// EnrollmentStore keeps the enrolled course list in memory, in enrollment order.
type EnrollmentStore struct {
	mu      sync.RWMutex
	courses []domain.Course
}

func NewEnrollmentStore() *EnrollmentStore {
	return &EnrollmentStore{}
}

func (s *EnrollmentStore) Enroll(_ context.Context, course domain.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == course.ID {
			return nil
		}
	}
	s.courses = append(s.courses, course)
	return nil
}

func (s *EnrollmentStore) List(_ context.Context) ([]domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *EnrollmentStore) IsEnrolled(_ context.Context, courseID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == courseID {
			return true, nil
		}
	}
	return false, nil
}
