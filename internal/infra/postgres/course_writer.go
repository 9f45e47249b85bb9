package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"course-quiz-service/internal/domain"
	"github.com/uptrace/bun"
)

// CourseRow maps the courses table.
type CourseRow struct {
	bun.BaseModel `bun:"table:courses"`

	ID   string `bun:"id,pk"`
	Data string `bun:"data,type:jsonb"`
}

// CourseWriter upserts course records; used by the seed command.
type CourseWriter struct {
	db *bun.DB
}

func NewCourseWriter(db *bun.DB) *CourseWriter {
	return &CourseWriter{db: db}
}

// UpsertAll writes every record in a single transaction.
func (w *CourseWriter) UpsertAll(ctx context.Context, recs []domain.CourseRecord) error {
	return w.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, rec := range recs {
			if err := upsertCourse(ctx, tx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertCourse(ctx context.Context, db bun.IDB, rec domain.CourseRecord) error {
	row, err := courseRow(rec)
	if err != nil {
		return err
	}
	_, err = db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert course %s: %w", rec.ID, err)
	}
	return nil
}

func courseRow(rec domain.CourseRecord) (*CourseRow, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal course %s: %w", rec.ID, err)
	}
	return &CourseRow{ID: rec.ID, Data: string(data)}, nil
}
