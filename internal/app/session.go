package app

import (
	"context"
	"sync"

	"course-quiz-service/internal/domain"
)

// Session is the live quiz for one course as seen by one client. Every
// accepted mutation is written to the progress store before returning.
type Session struct {
	svc *QuizService

	mu          sync.Mutex
	course      domain.Course
	set         domain.QuestionSet
	state       domain.SessionState
	open        bool
	playerName  string
	leaderboard []domain.LeaderboardEntry
	enrolled    bool
}

// QuestionView is a question without its answer key.
type QuestionView struct {
	ID         string   `json:"id"`
	Number     int      `json:"number"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	Eliminated []int    `json:"eliminated,omitempty"`
	Selected   *int     `json:"selected,omitempty"`
}

// ResultView is the per-question breakdown shown after submitting.
type ResultView struct {
	ID            string `json:"id"`
	Prompt        string `json:"prompt"`
	YourAnswer    string `json:"yourAnswer,omitempty"`
	Answered      bool   `json:"answered"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

// SessionView is a read-only snapshot for rendering.
type SessionView struct {
	CourseID     string                    `json:"courseId"`
	CourseTitle  string                    `json:"courseTitle"`
	Level        domain.Level              `json:"level"`
	Open         bool                      `json:"open"`
	Enrolled     bool                      `json:"enrolled"`
	PlayerName   string                    `json:"playerName"`
	Total        int                       `json:"total"`
	CurrentIndex int                       `json:"currentIndex"`
	Answered     int                       `json:"answered"`
	Question     *QuestionView             `json:"question,omitempty"`
	UsedHint     bool                      `json:"usedHint"`
	Theory       string                    `json:"theory"`
	TheoryPrompt string                    `json:"theoryPrompt"`
	Submitted    bool                      `json:"submitted"`
	Score        int                       `json:"score"`
	Results      []ResultView              `json:"results,omitempty"`
	Leaderboard  []domain.LeaderboardEntry `json:"leaderboard"`
}

func (s *Session) CourseID() string {
	return s.course.ID
}

// Open and Close only toggle visibility.
func (s *Session) Open() {
	s.mu.Lock()
	s.open = true
	s.mu.Unlock()
}

func (s *Session) Close() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}

func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// State returns a copy of the current session state.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Session) SelectOption(ctx context.Context, questionID string, option int) error {
	return s.apply(ctx, SelectOption(questionID, option))
}

// GoTo moves the cursor; out-of-range indexes are ignored.
func (s *Session) GoTo(ctx context.Context, index int) error {
	return s.apply(ctx, GoTo(index))
}

func (s *Session) Next(ctx context.Context) error {
	return s.step(ctx, 1)
}

func (s *Session) Prev(ctx context.Context) error {
	return s.step(ctx, -1)
}

func (s *Session) UseHint(ctx context.Context) error {
	return s.apply(ctx, UseHint())
}

func (s *Session) SetTheory(ctx context.Context, text string) error {
	return s.apply(ctx, SetTheory(text))
}

func (s *Session) Retake(ctx context.Context) error {
	return s.apply(ctx, Retake())
}

// SetPlayerName sets the name used for the next leaderboard entry.
func (s *Session) SetPlayerName(name string) {
	s.mu.Lock()
	s.playerName = name
	s.mu.Unlock()
}

// ChangeLevel switches difficulty and always starts a fresh session.
func (s *Session) ChangeLevel(ctx context.Context, level domain.Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.state, s.set, ChangeLevel(level), s.svc.shuffler)
	if err != nil {
		return err
	}
	set, err := s.svc.bank.QuestionSet(ctx, s.course.ID, level)
	if err != nil {
		return err
	}
	s.set = set
	s.state = next
	s.svc.saveProgress(ctx, s.course.ID, s.state)
	return nil
}

// Submit scores the attempt and records it on the leaderboard under the
// current player name.
func (s *Session) Submit(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.state, s.set, Submit(), s.svc.shuffler)
	if err != nil {
		return nil, err
	}
	s.state = next
	s.recordLocked(ctx, s.playerName)
	s.svc.saveProgress(ctx, s.course.ID, s.state)
	return s.leaderboardLocked(), nil
}

// SaveName records the submitted score again under a new name.
func (s *Session) SaveName(ctx context.Context, name string) ([]domain.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Submitted {
		return nil, ErrNotSubmitted
	}
	s.playerName = name
	s.recordLocked(ctx, name)
	return s.leaderboardLocked(), nil
}

// Share copies the result line to clipboard. Only a submitted attempt can be
// shared; after that a clipboard failure still yields a fallback result.
func (s *Session) Share(ctx context.Context, clipboard Clipboard) (ShareResult, error) {
	s.mu.Lock()
	if !s.state.Submitted {
		s.mu.Unlock()
		return ShareResult{}, ErrNotSubmitted
	}
	text := ShareText(s.state.Score, s.set.Len(), s.course.Title, s.state.Level)
	s.mu.Unlock()
	return Share(ctx, clipboard, text), nil
}

// Enroll adds the course to the enrolled list once.
func (s *Session) Enroll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enrolled {
		return nil
	}
	if err := s.svc.enrollments.Enroll(ctx, s.course); err != nil {
		return err
	}
	s.enrolled = true
	return nil
}

func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		CourseID:     s.course.ID,
		CourseTitle:  s.course.Title,
		Level:        s.state.Level,
		Open:         s.open,
		Enrolled:     s.enrolled,
		PlayerName:   s.playerName,
		Total:        s.set.Len(),
		CurrentIndex: s.state.CurrentIndex,
		Answered:     s.state.AnsweredCount(),
		UsedHint:     s.state.UsedHint,
		Theory:       s.state.Theory,
		TheoryPrompt: s.set.TheoryPrompt,
		Submitted:    s.state.Submitted,
		Leaderboard:  s.leaderboardLocked(),
	}
	if s.state.CurrentIndex < s.set.Len() {
		q := s.set.Questions[s.state.CurrentIndex]
		qv := &QuestionView{
			ID:         q.ID,
			Number:     s.state.CurrentIndex + 1,
			Prompt:     q.Prompt,
			Options:    append([]string(nil), q.Options...),
			Eliminated: append([]int(nil), s.state.Eliminated[q.ID]...),
		}
		if chosen, ok := s.state.Answers[q.ID]; ok {
			qv.Selected = &chosen
		}
		view.Question = qv
	}
	if s.state.Submitted {
		view.Score = s.state.Score
		view.Results = make([]ResultView, 0, s.set.Len())
		for _, q := range s.set.Questions {
			rv := ResultView{
				ID:            q.ID,
				Prompt:        q.Prompt,
				CorrectAnswer: q.Options[q.CorrectIndex],
				Explanation:   q.Explanation,
			}
			if chosen, ok := s.state.Answers[q.ID]; ok && chosen >= 0 && chosen < len(q.Options) {
				rv.Answered = true
				rv.YourAnswer = q.Options[chosen]
				rv.Correct = chosen == q.CorrectIndex
			}
			view.Results = append(view.Results, rv)
		}
	}
	return view
}

func (s *Session) step(ctx context.Context, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(ctx, GoTo(s.state.CurrentIndex+delta))
}

func (s *Session) apply(ctx context.Context, action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(ctx, action)
}

func (s *Session) applyLocked(ctx context.Context, action Action) error {
	next, err := Reduce(s.state, s.set, action, s.svc.shuffler)
	if err != nil {
		return err
	}
	s.state = next
	s.svc.saveProgress(ctx, s.course.ID, s.state)
	return nil
}

func (s *Session) recordLocked(ctx context.Context, name string) {
	entry := domain.NewLeaderboardEntry(name, s.state.Score, s.svc.now())
	s.leaderboard = s.svc.recordAttempt(ctx, s.course.ID, s.leaderboard, entry)
}

func (s *Session) leaderboardLocked() []domain.LeaderboardEntry {
	out := make([]domain.LeaderboardEntry, len(s.leaderboard))
	copy(out, s.leaderboard)
	return out
}
