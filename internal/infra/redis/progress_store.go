package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ProgressStore keeps quiz progress under courseQuizProgress:{courseID}.
// A zero ttl keeps progress forever, like browser local storage.
type ProgressStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProgressStore(client *redis.Client, ttl time.Duration) *ProgressStore {
	return &ProgressStore{client: client, ttl: ttl}
}

func (s *ProgressStore) Save(ctx context.Context, courseID string, state domain.SessionState) error {
	data, err := domain.EncodeProgress(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, progressKey(courseID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (s *ProgressStore) Load(ctx context.Context, courseID string) (domain.SessionState, bool, error) {
	data, err := s.client.Get(ctx, progressKey(courseID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.SessionState{}, false, nil
	}
	if err != nil {
		return domain.SessionState{}, false, fmt.Errorf("load progress: %w", err)
	}
	return domain.DecodeProgress(data)
}

func progressKey(courseID string) string {
	return "courseQuizProgress:" + courseID
}
