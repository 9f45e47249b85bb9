package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"course-quiz-service/internal/app"
	"course-quiz-service/internal/domain"
	"course-quiz-service/internal/logger"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	sendBuffer = 16

	// maxMessageSize caps one client frame; theory answers are the largest payload.
	maxMessageSize = 16 << 10
)

var errSendQueueFull = errors.New("send queue full")

type WSHandler struct {
	service  *app.QuizService
	log      *logger.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService, log *logger.Logger) *WSHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &WSHandler{
		service: service,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	QuestionID string `json:"questionId"`
	Option     int    `json:"option"`
}

type goToPayload struct {
	Index int `json:"index"`
}

type theoryPayload struct {
	Text string `json:"text"`
}

type levelPayload struct {
	Level string `json:"level"`
}

type namePayload struct {
	Name string `json:"name"`
}

// sharePayload.Clipboard tells whether the client can write to its clipboard.
type sharePayload struct {
	Clipboard *bool `json:"clipboard"`
}

type clipboardPayload struct {
	Text string `json:"text"`
}

type leaderboardPayload struct {
	CourseID string                    `json:"courseId"`
	Entries  []domain.LeaderboardEntry `json:"entries"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and drives one quiz session per connection.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	courseID := r.URL.Query().Get("courseId")
	if courseID == "" {
		http.Error(w, "missing courseId", http.StatusBadRequest)
		return
	}
	name := r.URL.Query().Get("name")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	log := h.log.With("conn_id", uuid.NewString(), "course_id", courseID)
	ctx := r.Context()

	session, err := h.service.OpenSession(ctx, courseID)
	if err != nil {
		log.Error("open session failed", "error", err)
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	session.SetPlayerName(name)
	session.Open()
	log.Info("quiz connected")

	send := make(chan outboundMessage[any], sendBuffer)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Warn("ws write error", "error", err)
				// drain so the reader never blocks on a dead connection
				for range send {
				}
				return
			}
		}
	}()

	send <- stateMessage(session)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		for _, msg := range h.dispatch(ctx, session, inbound, send) {
			send <- msg
		}
	}

	close(send)
	<-writerDone
	log.Info("quiz disconnected")
}

// dispatch applies one client message and returns the replies to send.
func (h *WSHandler) dispatch(ctx context.Context, session *app.Session, in inboundMessage, send chan<- outboundMessage[any]) []outboundMessage[any] {
	var err error
	var board []domain.LeaderboardEntry
	var extra *outboundMessage[any]

	switch in.Type {
	case "open":
		session.Open()
	case "close":
		session.Close()
	case "select":
		var p selectPayload
		if err = decode(in.Payload, &p); err == nil {
			err = session.SelectOption(ctx, p.QuestionID, p.Option)
		}
	case "goTo":
		var p goToPayload
		if err = decode(in.Payload, &p); err == nil {
			err = session.GoTo(ctx, p.Index)
		}
	case "next":
		err = session.Next(ctx)
	case "prev":
		err = session.Prev(ctx)
	case "hint":
		err = session.UseHint(ctx)
	case "theory":
		var p theoryPayload
		if err = decode(in.Payload, &p); err == nil {
			err = session.SetTheory(ctx, p.Text)
		}
	case "submit":
		board, err = session.Submit(ctx)
	case "retake":
		err = session.Retake(ctx)
	case "level":
		var p levelPayload
		if err = decode(in.Payload, &p); err == nil {
			var level domain.Level
			if level, err = domain.ParseLevel(p.Level); err == nil {
				err = session.ChangeLevel(ctx, level)
			}
		}
	case "saveName":
		var p namePayload
		if err = decode(in.Payload, &p); err == nil {
			board, err = session.SaveName(ctx, p.Name)
		}
	case "share":
		var p sharePayload
		_ = decode(in.Payload, &p)
		var clipboard app.Clipboard
		if p.Clipboard == nil || *p.Clipboard {
			clipboard = clientClipboard(send)
		}
		var result app.ShareResult
		if result, err = session.Share(ctx, clipboard); err == nil {
			extra = &outboundMessage[any]{Type: "share", Payload: result}
		}
	case "enroll":
		err = session.Enroll(ctx)
	default:
		return []outboundMessage[any]{errorMessage(errors.New("unsupported message type"))}
	}

	if err != nil {
		return []outboundMessage[any]{errorMessage(err)}
	}
	out := []outboundMessage[any]{stateMessage(session)}
	if board != nil {
		out = append(out, outboundMessage[any]{Type: "leaderboard", Payload: leaderboardPayload{
			CourseID: session.CourseID(),
			Entries:  board,
		}})
	}
	if extra != nil {
		out = append(out, *extra)
	}
	return out
}

// clientClipboard asks the client to copy text; a full send queue counts as a failed write.
func clientClipboard(send chan<- outboundMessage[any]) app.Clipboard {
	return app.ClipboardFunc(func(_ context.Context, text string) error {
		select {
		case send <- outboundMessage[any]{Type: "clipboard", Payload: clipboardPayload{Text: text}}:
			return nil
		default:
			return errSendQueueFull
		}
	})
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return errors.New("missing payload")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.New("invalid payload")
	}
	return nil
}

func stateMessage(session *app.Session) outboundMessage[any] {
	return outboundMessage[any]{Type: "state", Payload: session.View()}
}

func errorMessage(err error) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
}
