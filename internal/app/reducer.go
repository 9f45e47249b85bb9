package app

import (
	"errors"
	"fmt"

	"course-quiz-service/internal/domain"
)

var (
	// ErrAlreadySubmitted rejects mutations after scoring until a retake.
	ErrAlreadySubmitted = errors.New("quiz already submitted")
	// ErrHintUsed is returned when the one-time hint was consumed.
	ErrHintUsed = errors.New("hint already used")
	// ErrOptionEliminated rejects selecting an option the hint removed.
	ErrOptionEliminated = errors.New("option eliminated by hint")
	// ErrNotSubmitted is returned for actions that need a scored attempt.
	ErrNotSubmitted = errors.New("quiz not submitted")
	// ErrUnknownAction is returned for unsupported action types.
	ErrUnknownAction = errors.New("unknown action")
)

// ActionType names a session transition.
type ActionType string

const (
	ActionSelectOption ActionType = "select"
	ActionGoTo         ActionType = "goTo"
	ActionUseHint      ActionType = "hint"
	ActionSetTheory    ActionType = "theory"
	ActionSubmit       ActionType = "submit"
	ActionRetake       ActionType = "retake"
	ActionChangeLevel  ActionType = "level"
)

// Action is one user input against a session. Only the fields relevant to
// Type are read.
type Action struct {
	Type       ActionType
	QuestionID string
	Option     int
	Index      int
	Text       string
	Level      domain.Level
}

func SelectOption(questionID string, option int) Action {
	return Action{Type: ActionSelectOption, QuestionID: questionID, Option: option}
}

func GoTo(index int) Action { return Action{Type: ActionGoTo, Index: index} }

func UseHint() Action { return Action{Type: ActionUseHint} }

func SetTheory(text string) Action { return Action{Type: ActionSetTheory, Text: text} }

func Submit() Action { return Action{Type: ActionSubmit} }

func Retake() Action { return Action{Type: ActionRetake} }

func ChangeLevel(level domain.Level) Action { return Action{Type: ActionChangeLevel, Level: level} }

// Reduce applies action to state against the active question set and returns
// the next state. The input is never modified; on error the returned state is
// equal to the input.
func Reduce(state domain.SessionState, set domain.QuestionSet, action Action, shuffler Shuffler) (domain.SessionState, error) {
	switch action.Type {
	case ActionSelectOption:
		return selectOption(state, set, action.QuestionID, action.Option)
	case ActionGoTo:
		if action.Index < 0 || action.Index >= set.Len() {
			return state, nil
		}
		next := state.Clone()
		next.CurrentIndex = action.Index
		return next, nil
	case ActionUseHint:
		return useHint(state, set, shuffler)
	case ActionSetTheory:
		if state.Submitted {
			return state, ErrAlreadySubmitted
		}
		next := state.Clone()
		next.Theory = action.Text
		return next, nil
	case ActionSubmit:
		if state.Submitted {
			return state, ErrAlreadySubmitted
		}
		next := state.Clone()
		next.Score = Score(set, next.Answers)
		next.Submitted = true
		return next, nil
	case ActionRetake:
		return domain.NewSessionState(state.Level), nil
	case ActionChangeLevel:
		if !action.Level.Valid() {
			return state, fmt.Errorf("%w: %q", domain.ErrInvalidLevel, action.Level)
		}
		return domain.NewSessionState(action.Level), nil
	}
	return state, fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
}

// Score counts questions whose stored answer equals the correct index.
// Unanswered questions score nothing.
func Score(set domain.QuestionSet, answers map[string]int) int {
	score := 0
	for _, q := range set.Questions {
		if chosen, ok := answers[q.ID]; ok && chosen == q.CorrectIndex {
			score++
		}
	}
	return score
}

func selectOption(state domain.SessionState, set domain.QuestionSet, questionID string, option int) (domain.SessionState, error) {
	if state.Submitted {
		return state, ErrAlreadySubmitted
	}
	q, ok := set.Find(questionID)
	if !ok {
		return state, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, questionID)
	}
	if option < 0 || option >= len(q.Options) {
		return state, fmt.Errorf("%w: %d", domain.ErrOptionNotFound, option)
	}
	if state.IsEliminated(questionID, option) {
		return state, ErrOptionEliminated
	}
	next := state.Clone()
	next.Answers[questionID] = option
	return next, nil
}

func useHint(state domain.SessionState, set domain.QuestionSet, shuffler Shuffler) (domain.SessionState, error) {
	if state.UsedHint {
		return state, ErrHintUsed
	}
	if state.Submitted {
		return state, ErrAlreadySubmitted
	}
	if state.CurrentIndex < 0 || state.CurrentIndex >= set.Len() {
		// nothing to eliminate; the hint stays available
		return state, nil
	}
	q := set.Questions[state.CurrentIndex]
	next := state.Clone()
	next.Eliminated[q.ID] = eliminate(q, shuffler)
	next.UsedHint = true
	return next, nil
}
