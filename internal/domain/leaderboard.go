package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// AnonymousName replaces blank player names.
	AnonymousName = "Anonymous"
	// DefaultLeaderboardSize is how many attempts a course keeps.
	DefaultLeaderboardSize = 5
	// TimestampLayout matches JavaScript's Date.toISOString output.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// LeaderboardEntry is one scored attempt.
type LeaderboardEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Leaderboard captures the ordered top attempts for a course.
type Leaderboard struct {
	CourseID  string             `json:"courseId"`
	Entries   []LeaderboardEntry `json:"entries"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

func NewLeaderboardEntry(name string, score int, at time.Time) LeaderboardEntry {
	name = strings.TrimSpace(name)
	if name == "" {
		name = AnonymousName
	}
	return LeaderboardEntry{
		Name:  name,
		Score: score,
		Date:  at.UTC().Format(TimestampLayout),
	}
}

// RankLeaderboard orders entries by score desc, newer date first on ties, and
// keeps at most limit of them. A non-positive limit uses DefaultLeaderboardSize.
func RankLeaderboard(entries []LeaderboardEntry, limit int) []LeaderboardEntry {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	out := make([]LeaderboardEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return newerThan(out[i].Date, out[j].Date)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// InsertLeaderboard appends entry to existing and re-ranks.
func InsertLeaderboard(existing []LeaderboardEntry, entry LeaderboardEntry, limit int) []LeaderboardEntry {
	combined := make([]LeaderboardEntry, 0, len(existing)+1)
	combined = append(combined, existing...)
	combined = append(combined, entry)
	return RankLeaderboard(combined, limit)
}

func newerThan(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339Nano, a)
	tb, errB := time.Parse(time.RFC3339Nano, b)
	if errA == nil && errB == nil {
		return ta.After(tb)
	}
	return a > b
}

// EncodeLeaderboard marshals entries as a JSON array; nil encodes as [].
func EncodeLeaderboard(entries []LeaderboardEntry) ([]byte, error) {
	if entries == nil {
		entries = []LeaderboardEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode leaderboard: %w", err)
	}
	return data, nil
}

// DecodeLeaderboard parses a persisted leaderboard array.
func DecodeLeaderboard(data []byte) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return entries, nil
}
