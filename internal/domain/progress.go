package domain

import (
	"encoding/json"
	"fmt"
)

// ProgressRecord is the persisted JSON layout of a SessionState.
type ProgressRecord struct {
	SelectedLevel Level            `json:"selectedLevel"`
	QuizState     QuizStateRecord  `json:"quizState"`
	UsedHint      bool             `json:"usedHint"`
	Eliminated    map[string][]int `json:"eliminated"`
	CurrentIndex  int              `json:"currentQIndex"`
}

type QuizStateRecord struct {
	Answers   map[string]int `json:"answers"`
	Theory    string         `json:"theory"`
	Submitted bool           `json:"submitted"`
	Score     int            `json:"score"`
}

func NewProgressRecord(s SessionState) ProgressRecord {
	c := s.Clone()
	return ProgressRecord{
		SelectedLevel: c.Level,
		QuizState: QuizStateRecord{
			Answers:   c.Answers,
			Theory:    c.Theory,
			Submitted: c.Submitted,
			Score:     c.Score,
		},
		UsedHint:     c.UsedHint,
		Eliminated:   c.Eliminated,
		CurrentIndex: c.CurrentIndex,
	}
}

func (r ProgressRecord) State() SessionState {
	s := SessionState{
		Level:        r.SelectedLevel,
		Answers:      r.QuizState.Answers,
		Theory:       r.QuizState.Theory,
		Submitted:    r.QuizState.Submitted,
		Score:        r.QuizState.Score,
		CurrentIndex: r.CurrentIndex,
		UsedHint:     r.UsedHint,
		Eliminated:   r.Eliminated,
	}
	return s.Clone()
}

// EncodeProgress marshals a state into its persisted form.
func EncodeProgress(s SessionState) ([]byte, error) {
	data, err := json.Marshal(NewProgressRecord(s))
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	return data, nil
}

// DecodeProgress parses persisted progress. A record without a valid level is
// treated as absent (ok=false).
func DecodeProgress(data []byte) (SessionState, bool, error) {
	var rec ProgressRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return SessionState{}, false, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if !rec.SelectedLevel.Valid() {
		return SessionState{}, false, nil
	}
	return rec.State(), true, nil
}
