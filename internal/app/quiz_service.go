package app

import (
	"context"
	"time"

	"course-quiz-service/internal/domain"
	"course-quiz-service/internal/logger"
)

// ProgressStore persists session state per course.
type ProgressStore interface {
	Save(ctx context.Context, courseID string, state domain.SessionState) error
	// Load reports ok=false when nothing usable was saved for the course.
	Load(ctx context.Context, courseID string) (domain.SessionState, bool, error)
}

// LeaderboardStore keeps the ranked top attempts per course.
type LeaderboardStore interface {
	RecordAttempt(ctx context.Context, courseID string, entry domain.LeaderboardEntry) ([]domain.LeaderboardEntry, error)
	Get(ctx context.Context, courseID string) ([]domain.LeaderboardEntry, error)
}

// EnrollmentStore keeps the global list of enrolled courses.
type EnrollmentStore interface {
	Enroll(ctx context.Context, course domain.Course) error
	List(ctx context.Context) ([]domain.Course, error)
	IsEnrolled(ctx context.Context, courseID string) (bool, error)
}

// QuizService contains the course quiz use cases.
type QuizService struct {
	bank         *QuestionBank
	progress     ProgressStore
	leaderboards LeaderboardStore
	enrollments  EnrollmentStore
	defaultLevel domain.Level
	boardSize    int
	log          *logger.Logger
	now          func() time.Time
	shuffler     Shuffler
}

type Option func(*QuizService)

func WithLogger(log *logger.Logger) Option {
	return func(s *QuizService) { s.log = log }
}

// WithClock is used by tests for deterministic leaderboard timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *QuizService) { s.now = now }
}

// WithShuffler fixes the hint draw, mostly for tests.
func WithShuffler(shuffler Shuffler) Option {
	return func(s *QuizService) { s.shuffler = shuffler }
}

func WithDefaultLevel(level domain.Level) Option {
	return func(s *QuizService) {
		if level.Valid() {
			s.defaultLevel = level
		}
	}
}

// WithLeaderboardSize must match the store's limit; it bounds the local
// fallback ranking.
func WithLeaderboardSize(size int) Option {
	return func(s *QuizService) {
		if size > 0 {
			s.boardSize = size
		}
	}
}

func NewQuizService(bank *QuestionBank, progress ProgressStore, leaderboards LeaderboardStore, enrollments EnrollmentStore, opts ...Option) *QuizService {
	s := &QuizService{
		bank:         bank,
		progress:     progress,
		leaderboards: leaderboards,
		enrollments:  enrollments,
		defaultLevel: domain.LevelEasy,
		boardSize:    domain.DefaultLeaderboardSize,
		log:          logger.Nop(),
		now:          time.Now,
		shuffler:     DefaultShuffler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenSession restores (or starts) the quiz for a course. Unreadable progress
// or leaderboard data is logged and replaced by empty defaults.
func (s *QuizService) OpenSession(ctx context.Context, courseID string) (*Session, error) {
	course, err := s.bank.Course(ctx, courseID)
	if err != nil {
		return nil, err
	}

	state, ok, err := s.progress.Load(ctx, course.ID)
	if err != nil {
		s.log.Warn("discarding unreadable progress", "course_id", course.ID, "error", err)
		ok = false
	}
	if !ok {
		state = domain.NewSessionState(s.defaultLevel)
	}

	set, err := s.bank.QuestionSet(ctx, course.ID, state.Level)
	if err != nil {
		return nil, err
	}
	if state.CurrentIndex < 0 || state.CurrentIndex >= set.Len() {
		state.CurrentIndex = 0
	}

	board := s.loadLeaderboard(ctx, course.ID)

	enrolled, err := s.enrollments.IsEnrolled(ctx, course.ID)
	if err != nil {
		s.log.Warn("enrollment lookup failed", "course_id", course.ID, "error", err)
	}

	return &Session{
		svc:         s,
		course:      course,
		set:         set,
		state:       state,
		leaderboard: board,
		enrolled:    enrolled,
	}, nil
}

// Leaderboard returns the ranked attempts for a course. Unknown ids resolve to
// the placeholder course, the same key sessions record under.
func (s *QuizService) Leaderboard(ctx context.Context, courseID string) (domain.Leaderboard, error) {
	course, err := s.bank.Course(ctx, courseID)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	entries, err := s.leaderboards.Get(ctx, course.ID)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	return domain.Leaderboard{CourseID: course.ID, Entries: entries, FetchedAt: s.now()}, nil
}

// Enrollments lists enrolled courses for the profile view.
func (s *QuizService) Enrollments(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.enrollments.List(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, nil
}

func (s *QuizService) loadLeaderboard(ctx context.Context, courseID string) []domain.LeaderboardEntry {
	entries, err := s.leaderboards.Get(ctx, courseID)
	if err != nil {
		s.log.Warn("leaderboard unavailable", "course_id", courseID, "error", err)
		return []domain.LeaderboardEntry{}
	}
	return entries
}

// saveProgress is best-effort: failures are logged and never reach the caller.
func (s *QuizService) saveProgress(ctx context.Context, courseID string, state domain.SessionState) {
	if err := s.progress.Save(ctx, courseID, state); err != nil {
		s.log.Warn("saving progress failed", "course_id", courseID, "error", err)
	}
}

// recordAttempt inserts an entry, falling back to a local ranking of current
// when the store is unavailable.
func (s *QuizService) recordAttempt(ctx context.Context, courseID string, current []domain.LeaderboardEntry, entry domain.LeaderboardEntry) []domain.LeaderboardEntry {
	board, err := s.leaderboards.RecordAttempt(ctx, courseID, entry)
	if err != nil {
		s.log.Warn("recording attempt failed", "course_id", courseID, "error", err)
		return domain.InsertLeaderboard(current, entry, s.boardSize)
	}
	return board
}
