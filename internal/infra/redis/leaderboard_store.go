package redis

import (
	"context"
	"errors"
	"fmt"

	"course-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic WATCH retries under contention.
const maxTxRetries = 10

var ErrTxContention = errors.New("redis transaction contention")

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// LeaderboardStore keeps the ranked JSON array under leaderboard:{courseID}.
// Read-modify-write runs inside WATCH/MULTI so concurrent submits do not drop entries.
type LeaderboardStore struct {
	client *redis.Client
	limit  int
}

func NewLeaderboardStore(client *redis.Client, limit int) *LeaderboardStore {
	if limit <= 0 {
		limit = domain.DefaultLeaderboardSize
	}
	return &LeaderboardStore{client: client, limit: limit}
}

func (s *LeaderboardStore) RecordAttempt(ctx context.Context, courseID string, entry domain.LeaderboardEntry) ([]domain.LeaderboardEntry, error) {
	key := leaderboardKey(courseID)
	var ranked []domain.LeaderboardEntry

	txf := func(tx *redis.Tx) error {
		current, err := readLeaderboard(ctx, tx, key)
		if err != nil {
			return err
		}
		ranked = domain.InsertLeaderboard(current, entry, s.limit)
		data, err := domain.EncodeLeaderboard(ranked)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	if err := watchRetry(ctx, s.client, txf, key); err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}
	return ranked, nil
}

func (s *LeaderboardStore) Get(ctx context.Context, courseID string) ([]domain.LeaderboardEntry, error) {
	entries, err := readLeaderboard(ctx, s.client, leaderboardKey(courseID))
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	return domain.RankLeaderboard(entries, s.limit), nil
}

// readLeaderboard returns an empty board for missing or malformed data.
func readLeaderboard(ctx context.Context, c getter, key string) ([]domain.LeaderboardEntry, error) {
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.LeaderboardEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	entries, err := domain.DecodeLeaderboard(data)
	if err != nil {
		return []domain.LeaderboardEntry{}, nil
	}
	return entries, nil
}

func watchRetry(ctx context.Context, client *redis.Client, txf func(*redis.Tx) error, keys ...string) error {
	for i := 0; i < maxTxRetries; i++ {
		err := client.Watch(ctx, txf, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return ErrTxContention
}

func leaderboardKey(courseID string) string {
	return "leaderboard:" + courseID
}
