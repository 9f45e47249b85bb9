package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"course-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const enrollmentsKey = "enrolledCourses"

// EnrollmentStore keeps the global enrolled course list as a JSON array.
type EnrollmentStore struct {
	client *redis.Client
}

func NewEnrollmentStore(client *redis.Client) *EnrollmentStore {
	return &EnrollmentStore{client: client}
}

func (s *EnrollmentStore) Enroll(ctx context.Context, course domain.Course) error {
	txf := func(tx *redis.Tx) error {
		courses, err := readEnrollments(ctx, tx)
		if err != nil {
			return err
		}
		for _, c := range courses {
			if c.ID == course.ID {
				return nil
			}
		}
		data, err := json.Marshal(append(courses, course))
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, enrollmentsKey, data, 0)
			return nil
		})
		return err
	}
	if err := watchRetry(ctx, s.client, txf, enrollmentsKey); err != nil {
		return fmt.Errorf("enroll %s: %w", course.ID, err)
	}
	return nil
}

func (s *EnrollmentStore) List(ctx context.Context) ([]domain.Course, error) {
	courses, err := readEnrollments(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return courses, nil
}

func (s *EnrollmentStore) IsEnrolled(ctx context.Context, courseID string) (bool, error) {
	courses, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range courses {
		if c.ID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func readEnrollments(ctx context.Context, c getter) ([]domain.Course, error) {
	data, err := c.Get(ctx, enrollmentsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Course{}, nil
	}
	if err != nil {
		return nil, err
	}
	var courses []domain.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return []domain.Course{}, nil
	}
	return courses, nil
}
