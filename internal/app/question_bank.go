package app

import (
	"context"
	"errors"

	"course-quiz-service/internal/domain"
)

// CourseRepository loads course records (from cache/backing store).
type CourseRepository interface {
	GetCourse(ctx context.Context, courseID string) (domain.CourseRecord, error)
}

// QuestionBank resolves question sets with the default-course fallback.
type QuestionBank struct {
	courses         CourseRepository
	defaultCourseID string
}

func NewQuestionBank(courses CourseRepository, defaultCourseID string) *QuestionBank {
	return &QuestionBank{courses: courses, defaultCourseID: defaultCourseID}
}

// Course returns catalog metadata, or domain.NotFoundCourse for unknown ids.
func (b *QuestionBank) Course(ctx context.Context, courseID string) (domain.Course, error) {
	rec, err := b.courses.GetCourse(ctx, courseID)
	if errors.Is(err, domain.ErrCourseNotFound) {
		return domain.NotFoundCourse, nil
	}
	if err != nil {
		return domain.Course{}, err
	}
	return rec.Course, nil
}

// QuestionSet returns the questions for a course and level. Courses without a
// question bank use the default course's bank; a missing level is an empty set.
func (b *QuestionBank) QuestionSet(ctx context.Context, courseID string, level domain.Level) (domain.QuestionSet, error) {
	rec, err := b.courses.GetCourse(ctx, courseID)
	if err != nil && !errors.Is(err, domain.ErrCourseNotFound) {
		return domain.QuestionSet{}, err
	}
	if err != nil || !rec.HasQuiz() {
		rec, err = b.courses.GetCourse(ctx, b.defaultCourseID)
		if errors.Is(err, domain.ErrCourseNotFound) {
			return domain.QuestionSet{}, nil
		}
		if err != nil {
			return domain.QuestionSet{}, err
		}
	}
	return rec.Quiz[level], nil
}
