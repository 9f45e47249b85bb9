package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"course-quiz-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CourseLoader fetches course records from a backing store (e.g., Postgres).
type CourseLoader interface {
	LoadCourse(ctx context.Context, courseID string) (domain.CourseRecord, error)
}

// CourseRepository caches course records with TTL to avoid repeated DB hits.
type CourseRepository struct {
	loader CourseLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex

	mu    sync.RWMutex
	cache map[string]cachedCourse
}

type cachedCourse struct {
	record    domain.CourseRecord
	expiresAt time.Time
}

func NewCourseRepository(loader CourseLoader, ttl time.Duration) *CourseRepository {
	return &CourseRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedCourse),
	}
}

func (r *CourseRepository) GetCourse(ctx context.Context, courseID string) (domain.CourseRecord, error) {
	if rec, ok := r.cached(courseID); ok {
		return rec, nil
	}

	result, err, _ := r.sf.Do(courseID, func() (interface{}, error) {
		if rec, ok := r.cached(courseID); ok {
			return rec, nil
		}

		rec, err := r.loader.LoadCourse(ctx, courseID)
		if err != nil {
			return domain.CourseRecord{}, err
		}

		r.mu.Lock()
		r.cache[courseID] = cachedCourse{
			record:    rec,
			expiresAt: r.clock().Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return rec, nil
	})
	if err != nil {
		return domain.CourseRecord{}, err
	}
	return result.(domain.CourseRecord), nil
}

func (r *CourseRepository) cached(courseID string) (domain.CourseRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.cache[courseID]
	if !ok || !entry.expiresAt.After(r.clock()) {
		return domain.CourseRecord{}, false
	}
	return entry.record, true
}

func (r *CourseRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticCourseLoader is a loader backed by an in-memory map (built-in catalog, tests).
type StaticCourseLoader struct {
	courses map[string]domain.CourseRecord
}

func NewStaticCourseLoader(courses map[string]domain.CourseRecord) *StaticCourseLoader {
	return &StaticCourseLoader{courses: courses}
}

func (l *StaticCourseLoader) LoadCourse(_ context.Context, courseID string) (domain.CourseRecord, error) {
	if rec, ok := l.courses[courseID]; ok {
		return rec, nil
	}
	return domain.CourseRecord{}, domain.ErrCourseNotFound
}
