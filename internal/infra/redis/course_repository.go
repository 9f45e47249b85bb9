package redis

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"time"

	"course-quiz-service/internal/domain"
	"course-quiz-service/internal/logger"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// CourseLoader fetches course records from a backing store (e.g., Postgres).
type CourseLoader interface {
	LoadCourse(ctx context.Context, courseID string) (domain.CourseRecord, error)
}

// CourseRepository caches course records in Redis and falls back to a loader on cache miss.
// Records are stored as JSON: SET course:{courseID} {record} EX ttl
type CourseRepository struct {
	client *redis.Client
	loader CourseLoader
	ttl    time.Duration
	log    *logger.Logger
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex
}

func NewCourseRepository(client *redis.Client, loader CourseLoader, ttl time.Duration, log *logger.Logger) *CourseRepository {
	if log == nil {
		log = logger.Nop()
	}
	return &CourseRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		log:    log,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CourseRepository) GetCourse(ctx context.Context, courseID string) (domain.CourseRecord, error) {
	if rec, ok := r.cached(ctx, courseID); ok {
		return rec, nil
	}

	result, err, _ := r.sf.Do(courseID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if rec, ok := r.cached(ctx, courseID); ok {
			return rec, nil
		}

		rec, err := r.loader.LoadCourse(ctx, courseID)
		if err != nil {
			return domain.CourseRecord{}, err
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return rec, nil
		}
		if err := r.client.Set(ctx, courseKey(courseID), data, r.ttlWithJitter()).Err(); err != nil {
			r.log.Warn("caching course failed", "course_id", courseID, "error", err)
		}
		return rec, nil
	})
	if err != nil {
		return domain.CourseRecord{}, err
	}
	return result.(domain.CourseRecord), nil
}

// cached treats unreachable Redis and undecodable payloads as a miss.
func (r *CourseRepository) cached(ctx context.Context, courseID string) (domain.CourseRecord, bool) {
	data, err := r.client.Get(ctx, courseKey(courseID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Debug("course cache read failed", "course_id", courseID, "error", err)
		}
		return domain.CourseRecord{}, false
	}
	var rec domain.CourseRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.CourseRecord{}, false
	}
	return rec, true
}

func (r *CourseRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

func courseKey(courseID string) string {
	return "course:" + courseID
}
