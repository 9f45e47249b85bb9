package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"course-quiz-service/internal/domain"
)

func TestProgressStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewProgressStore()

	if _, ok, err := store.Load(ctx, "web-basics"); ok || err != nil {
		t.Fatalf("expected no saved state, ok=%v err=%v", ok, err)
	}

	state := domain.NewSessionState(domain.LevelAdvanced)
	state.Answers["q11"] = 1
	state.CurrentIndex = 2
	state.UsedHint = true
	state.Eliminated["q13"] = []int{0, 1}
	if err := store.Save(ctx, "web-basics", state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.Load(ctx, "web-basics")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, state) {
		t.Fatalf("round trip mismatch: want %+v got %+v", state, got)
	}
}

func TestProgressStoreMalformed(t *testing.T) {
	store := NewProgressStore()
	store.Put("web-basics", []byte("{broken"))
	if _, _, err := store.Load(context.Background(), "web-basics"); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestLeaderboardStoreTopN(t *testing.T) {
	ctx := context.Background()
	store := NewLeaderboardStore(3)
	base := time.Date(2024, 11, 22, 10, 0, 0, 0, time.UTC)

	if board, err := store.Get(ctx, "web-basics"); err != nil || len(board) != 0 {
		t.Fatalf("expected empty board, got %v %v", board, err)
	}

	for i, score := range []int{2, 5, 2, 4, 1} {
		if _, err := store.RecordAttempt(ctx, "web-basics", domain.NewLeaderboardEntry("p", score, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	board, _ := store.Get(ctx, "web-basics")
	if len(board) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(board))
	}
	if board[0].Score != 5 || board[1].Score != 4 || board[2].Score != 2 {
		t.Fatalf("unexpected order %+v", board)
	}
	if board[2].Date != base.Add(2*time.Minute).Format(domain.TimestampLayout) {
		t.Fatalf("expected newest score-2 entry kept, got %+v", board[2])
	}
	if other, _ := store.Get(ctx, "react-fundamentals"); len(other) != 0 {
		t.Fatalf("leaderboards leaked across courses: %+v", other)
	}
}

func TestEnrollmentStoreIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewEnrollmentStore()
	course := domain.Course{ID: "web-basics", Title: "Web Development Fundamentals"}

	for i := 0; i < 2; i++ {
		if err := store.Enroll(ctx, course); err != nil {
			t.Fatalf("enroll: %v", err)
		}
	}
	courses, _ := store.List(ctx)
	if len(courses) != 1 || courses[0].ID != "web-basics" {
		t.Fatalf("expected single enrollment, got %+v", courses)
	}
	if ok, _ := store.IsEnrolled(ctx, "web-basics"); !ok {
		t.Fatalf("expected enrolled")
	}
	if ok, _ := store.IsEnrolled(ctx, "ml-basics"); ok {
		t.Fatalf("expected not enrolled")
	}
}
