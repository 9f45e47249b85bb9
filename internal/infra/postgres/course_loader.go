package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"course-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CourseLoader loads course JSONB (metadata plus question banks) from Postgres.
type CourseLoader struct {
	pool *pgxpool.Pool
}

func NewCourseLoader(pool *pgxpool.Pool) *CourseLoader {
	return &CourseLoader{pool: pool}
}

func (l *CourseLoader) LoadCourse(ctx context.Context, courseID string) (domain.CourseRecord, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM courses WHERE id=$1`, courseID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CourseRecord{}, fmt.Errorf("load course %s: %w", courseID, domain.ErrCourseNotFound)
	}
	if err != nil {
		return domain.CourseRecord{}, fmt.Errorf("load course %s: %w", courseID, err)
	}
	return decodeCourse(courseID, raw)
}

func decodeCourse(courseID string, raw []byte) (domain.CourseRecord, error) {
	var rec domain.CourseRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.CourseRecord{}, fmt.Errorf("unmarshal course %s: %w", courseID, err)
	}
	if rec.ID == "" {
		rec.ID = courseID
	}
	if err := rec.Validate(); err != nil {
		return domain.CourseRecord{}, fmt.Errorf("course %s: %w", courseID, err)
	}
	return rec, nil
}
