package redis

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"course-quiz-service/internal/domain"
)

func TestProgressStoreRoundTrip(t *testing.T) {
	mr := runMiniredis(t)
	store := NewProgressStore(newClient(mr), 0)
	ctx := context.Background()

	if _, ok, err := store.Load(ctx, "web-basics"); ok || err != nil {
		t.Fatalf("expected nothing saved, got ok=%v err=%v", ok, err)
	}

	state := domain.NewSessionState(domain.LevelIntermediate)
	state.Answers["q6"] = 2
	state.Theory = "hooks"
	state.CurrentIndex = 3
	state.UsedHint = true
	state.Eliminated["q6"] = []int{0, 1}
	if err := store.Save(ctx, "web-basics", state); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("courseQuizProgress:web-basics") {
		t.Fatalf("expected progress key")
	}
	if mr.TTL("courseQuizProgress:web-basics") != 0 {
		t.Fatalf("expected no expiry")
	}

	got, ok, err := store.Load(ctx, "web-basics")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, state) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", state, got)
	}
}

func TestProgressStoreMalformed(t *testing.T) {
	mr := runMiniredis(t)
	store := NewProgressStore(newClient(mr), time.Hour)
	_ = mr.Set("courseQuizProgress:web-basics", "not json")

	if _, _, err := store.Load(context.Background(), "web-basics"); err == nil {
		t.Fatalf("expected malformed record error")
	}
}

func TestLeaderboardStoreKeepsTopN(t *testing.T) {
	mr := runMiniredis(t)
	store := NewLeaderboardStore(newClient(mr), 5)
	ctx := context.Background()
	base := time.Date(2024, 11, 22, 10, 0, 0, 0, time.UTC)

	scores := []int{2, 5, 1, 3, 5, 0, 4}
	var board []domain.LeaderboardEntry
	for i, score := range scores {
		entry := domain.NewLeaderboardEntry(fmt.Sprintf("p%d", i), score, base.Add(time.Duration(i)*time.Minute))
		var err error
		board, err = store.RecordAttempt(ctx, "web-basics", entry)
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	if len(board) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(board))
	}
	wantNames := []string{"p4", "p1", "p6", "p3", "p0"}
	for i, name := range wantNames {
		if board[i].Name != name {
			t.Fatalf("position %d: want %s got %+v", i, name, board)
		}
	}

	stored, err := store.Get(ctx, "web-basics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(stored, board) {
		t.Fatalf("stored board differs: %+v", stored)
	}
}

func TestLeaderboardStoreEmptyAndMalformed(t *testing.T) {
	mr := runMiniredis(t)
	store := NewLeaderboardStore(newClient(mr), 5)
	ctx := context.Background()

	board, err := store.Get(ctx, "unknown")
	if err != nil || len(board) != 0 {
		t.Fatalf("expected empty board, got %+v %v", board, err)
	}

	_ = mr.Set("leaderboard:web-basics", "[{")
	board, err = store.RecordAttempt(ctx, "web-basics", domain.NewLeaderboardEntry("", 3, time.Now()))
	if err != nil {
		t.Fatalf("record over malformed data: %v", err)
	}
	if len(board) != 1 || board[0].Name != domain.AnonymousName {
		t.Fatalf("unexpected board %+v", board)
	}
}

func TestLeaderboardStoreConcurrentSubmits(t *testing.T) {
	mr := runMiniredis(t)
	store := NewLeaderboardStore(newClient(mr), 5)
	ctx := context.Background()
	base := time.Date(2024, 11, 22, 10, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry := domain.NewLeaderboardEntry(fmt.Sprintf("p%d", i), i, base.Add(time.Duration(i)*time.Second))
			if _, err := store.RecordAttempt(ctx, "web-basics", entry); err != nil {
				t.Errorf("record: %v", err)
			}
		}(i)
	}
	wg.Wait()

	board, _ := store.Get(ctx, "web-basics")
	if len(board) != 4 {
		t.Fatalf("expected every concurrent entry kept, got %+v", board)
	}
}

func TestEnrollmentStoreIsIdempotent(t *testing.T) {
	mr := runMiniredis(t)
	store := NewEnrollmentStore(newClient(mr))
	ctx := context.Background()
	course := domain.Course{ID: "web-basics", Title: "Web Development Fundamentals"}

	for i := 0; i < 2; i++ {
		if err := store.Enroll(ctx, course); err != nil {
			t.Fatalf("enroll: %v", err)
		}
	}
	courses, err := store.List(ctx)
	if err != nil || len(courses) != 1 || courses[0].Title != course.Title {
		t.Fatalf("unexpected enrollments %+v %v", courses, err)
	}
	ok, _ := store.IsEnrolled(ctx, "web-basics")
	if !ok {
		t.Fatalf("expected enrolled")
	}
	ok, _ = store.IsEnrolled(ctx, "ml-basics")
	if ok {
		t.Fatalf("unexpected enrollment")
	}
}

func TestEnrollmentStoreMalformedIsEmpty(t *testing.T) {
	mr := runMiniredis(t)
	store := NewEnrollmentStore(newClient(mr))
	_ = mr.Set(enrollmentsKey, "nope")

	courses, err := store.List(context.Background())
	if err != nil || len(courses) != 0 {
		t.Fatalf("expected empty list, got %+v %v", courses, err)
	}
}
