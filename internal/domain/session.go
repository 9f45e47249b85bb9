package domain

// SessionState is the per-course in-progress quiz.
type SessionState struct {
	Level        Level
	Answers      map[string]int
	Theory       string
	Submitted    bool
	Score        int
	CurrentIndex int
	UsedHint     bool
	Eliminated   map[string][]int
}

// NewSessionState returns a fresh session at the given level.
func NewSessionState(level Level) SessionState {
	return SessionState{
		Level:      level,
		Answers:    map[string]int{},
		Eliminated: map[string][]int{},
	}
}

// Clone deep-copies the maps so transitions never alias the caller's state.
func (s SessionState) Clone() SessionState {
	out := s
	out.Answers = make(map[string]int, len(s.Answers))
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	out.Eliminated = make(map[string][]int, len(s.Eliminated))
	for k, v := range s.Eliminated {
		out.Eliminated[k] = append([]int(nil), v...)
	}
	return out
}

// IsEliminated reports whether the hint removed option idx of a question.
func (s SessionState) IsEliminated(questionID string, idx int) bool {
	for _, e := range s.Eliminated[questionID] {
		if e == idx {
			return true
		}
	}
	return false
}

// AnsweredCount is the number of questions with a selection.
func (s SessionState) AnsweredCount() int {
	return len(s.Answers)
}
