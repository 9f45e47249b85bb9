package domain

import "fmt"

// Level is a quiz difficulty.
type Level string

const (
	LevelEasy         Level = "easy"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (l Level) Valid() bool {
	switch l {
	case LevelEasy, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// ParseLevel validates a raw level string.
func ParseLevel(raw string) (Level, error) {
	l := Level(raw)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, raw)
	}
	return l, nil
}

// Question models an MCQ question with exactly one correct option.
type Question struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"q"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
	Explanation  string   `json:"explanation"`
}

func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidQuestion)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: %s has %d options", ErrInvalidQuestion, q.ID, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("%w: %s correct index %d out of range", ErrInvalidQuestion, q.ID, q.CorrectIndex)
	}
	return nil
}

// WrongOptions returns the indexes of every incorrect option.
func (q Question) WrongOptions() []int {
	wrong := make([]int, 0, len(q.Options))
	for i := range q.Options {
		if i != q.CorrectIndex {
			wrong = append(wrong, i)
		}
	}
	return wrong
}

// QuestionSet is the ordered question list for one course and level.
type QuestionSet struct {
	Questions    []Question `json:"mcq"`
	TheoryPrompt string     `json:"theoryPrompt"`
}

func (s QuestionSet) Len() int {
	return len(s.Questions)
}

// Find returns the question with the given ID.
func (s QuestionSet) Find(questionID string) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return Question{}, false
}

func (s QuestionSet) Validate() error {
	seen := make(map[string]struct{}, len(s.Questions))
	for _, q := range s.Questions {
		if err := q.Validate(); err != nil {
			return err
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidQuestion, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}

// Course is catalog metadata shown on the course detail view.
type Course struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    string             `json:"duration,omitempty"`
	Difficulty  string             `json:"difficulty,omitempty"`
	Instructor  string             `json:"instructor,omitempty"`
	Price       string             `json:"price,omitempty"`
	Curriculum  map[Level][]string `json:"curriculum,omitempty"`
}

// NotFoundCourse stands in for unknown course ids.
var NotFoundCourse = Course{
	ID:          "not-found",
	Title:       "Course Not Found",
	Description: "The requested course could not be found.",
}

// CourseRecord is a course plus its question bank; Quiz is nil for courses without one.
type CourseRecord struct {
	Course
	Quiz map[Level]QuestionSet `json:"quiz,omitempty"`
}

func (r CourseRecord) HasQuiz() bool {
	return len(r.Quiz) > 0
}

func (r CourseRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: course without id", ErrInvalidQuestion)
	}
	for level, set := range r.Quiz {
		if !level.Valid() {
			return fmt.Errorf("%w: %q in course %s", ErrInvalidLevel, level, r.ID)
		}
		if err := set.Validate(); err != nil {
			return fmt.Errorf("course %s level %s: %w", r.ID, level, err)
		}
	}
	return nil
}
