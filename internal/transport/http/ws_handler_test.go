package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"course-quiz-service/internal/app"
	"course-quiz-service/internal/catalog"
	"course-quiz-service/internal/infra/memory"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := memory.NewCourseRepository(memory.NewStaticCourseLoader(catalog.Records()), time.Minute)
	bank := app.NewQuestionBank(repo, catalog.DefaultCourseID)
	service := app.NewQuizService(bank, memory.NewProgressStore(), memory.NewLeaderboardStore(5), memory.NewEnrollmentStore())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", NewWSHandler(service, nil).ServeWS)
	NewAPIHandler(service, nil).Register(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	u := "ws" + server.URL[len("http"):] + "/ws?" + query
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocketQuizFlow(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server, "courseId=web-basics&name=Alice")

	// Expect state event first.
	_, state := readNext(conn, t, "state")
	if state["courseTitle"] != "Web Development Fundamentals" || state["total"] != float64(5) {
		t.Fatalf("unexpected initial state %+v", state)
	}

	send(t, conn, "select", map[string]any{"questionId": "q1", "option": 2})
	readNext(conn, t, "state")

	send(t, conn, "hint", nil)
	_, state = readNext(conn, t, "state")
	if state["usedHint"] != true {
		t.Fatalf("expected hint used, got %+v", state)
	}

	send(t, conn, "hint", nil)
	readNext(conn, t, "error")

	send(t, conn, "submit", nil)
	_, state = readNext(conn, t, "state")
	if state["submitted"] != true || state["score"] != float64(1) {
		t.Fatalf("unexpected submitted state %+v", state)
	}
	_, board := readNext(conn, t, "leaderboard")
	entries, _ := board["entries"].([]any)
	if len(entries) != 1 || entries[0].(map[string]any)["name"] != "Alice" {
		t.Fatalf("unexpected leaderboard %+v", board)
	}

	send(t, conn, "select", map[string]any{"questionId": "q2", "option": 0})
	_, errPayload := readNext(conn, t, "error")
	if errPayload["message"] != app.ErrAlreadySubmitted.Error() {
		t.Fatalf("unexpected error %+v", errPayload)
	}
}

func submitQuiz(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	send(t, conn, "submit", nil)
	readNext(conn, t, "state")
	readNext(conn, t, "leaderboard")
}

func TestWebSocketShareWithoutClipboard(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server, "courseId=react-fundamentals")
	readNext(conn, t, "state")
	submitQuiz(t, conn)

	send(t, conn, "share", map[string]any{"clipboard": false})
	readNext(conn, t, "state")
	_, share := readNext(conn, t, "share")
	if share["copied"] != false || share["message"] != app.ShareFallbackMessage {
		t.Fatalf("unexpected share %+v", share)
	}
}

func TestWebSocketShareToClient(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server, "courseId=react-fundamentals")
	readNext(conn, t, "state")
	submitQuiz(t, conn)

	send(t, conn, "share", nil)
	_, clip := readNext(conn, t, "clipboard")
	if clip["text"] != `I scored 0/5 on "React.js for Beginners" (easy) — try it out!` {
		t.Fatalf("unexpected clipboard text %+v", clip)
	}
	readNext(conn, t, "state")
	_, share := readNext(conn, t, "share")
	if share["copied"] != true || share["message"] != app.ShareCopiedMessage {
		t.Fatalf("unexpected share %+v", share)
	}
}

func TestWebSocketShareBeforeSubmit(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server, "courseId=web-basics")
	readNext(conn, t, "state")

	send(t, conn, "share", nil)
	_, errPayload := readNext(conn, t, "error")
	if errPayload["message"] != app.ErrNotSubmitted.Error() {
		t.Fatalf("unexpected error %+v", errPayload)
	}
}

func TestWebSocketReadLimit(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server, "courseId=web-basics")
	readNext(conn, t, "state")

	send(t, conn, "theory", map[string]any{"text": strings.Repeat("x", maxMessageSize)})
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg map[string]any
	if err := conn.ReadJSON(&msg); err == nil {
		t.Fatalf("expected connection closed after oversized frame, got %+v", msg)
	}
}

func TestWebSocketRejectsBadInput(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/ws")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without courseId, got %d", resp.StatusCode)
	}

	conn := dial(t, server, "courseId=web-basics")
	readNext(conn, t, "state")
	send(t, conn, "level", map[string]any{"level": "expert"})
	readNext(conn, t, "error")
	send(t, conn, "dance", nil)
	readNext(conn, t, "error")
	send(t, conn, "select", nil)
	readNext(conn, t, "error")
}

func TestLeaderboardAndEnrollmentAPI(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server, "courseId=ml-basics&name=Grace")
	readNext(conn, t, "state")
	send(t, conn, "enroll", nil)
	_, state := readNext(conn, t, "state")
	if state["enrolled"] != true {
		t.Fatalf("expected enrolled state, got %+v", state)
	}
	send(t, conn, "submit", nil)
	readNext(conn, t, "state")
	readNext(conn, t, "leaderboard")

	var board struct {
		CourseID string `json:"courseId"`
		Entries  []struct {
			Name  string `json:"name"`
			Score int    `json:"score"`
		} `json:"entries"`
	}
	getJSON(t, server.URL+"/api/courses/ml-basics/leaderboard", &board)
	if board.CourseID != "ml-basics" || len(board.Entries) != 1 || board.Entries[0].Name != "Grace" {
		t.Fatalf("unexpected leaderboard %+v", board)
	}

	var courses []struct {
		ID string `json:"id"`
	}
	getJSON(t, server.URL+"/api/enrollments", &courses)
	if len(courses) != 1 || courses[0].ID != "ml-basics" {
		t.Fatalf("unexpected enrollments %+v", courses)
	}
}

func TestLeaderboardAPIUnknownCourse(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server, "courseId=foo&name=Linus")
	readNext(conn, t, "state")
	submitQuiz(t, conn)

	var board struct {
		CourseID string `json:"courseId"`
		Entries  []struct {
			Name string `json:"name"`
		} `json:"entries"`
	}
	getJSON(t, server.URL+"/api/courses/foo/leaderboard", &board)
	if board.CourseID != "not-found" || len(board.Entries) != 1 || board.Entries[0].Name != "Linus" {
		t.Fatalf("unexpected leaderboard for unknown course %+v", board)
	}
}

func send(t *testing.T, conn *websocket.Conn, typ string, payload any) {
	t.Helper()
	msg := map[string]any{"type": typ}
	if payload != nil {
		msg["payload"] = payload
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write %s: %v", typ, err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s (%+v)", expect, msg.Type, msg.Payload)
	}
	return msg.Type, msg.Payload
}

func getJSON(t *testing.T, url string, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}
