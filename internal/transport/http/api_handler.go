package http

import (
	"encoding/json"
	"net/http"

	"course-quiz-service/internal/app"
	"course-quiz-service/internal/logger"
)

// APIHandler serves read-only JSON views.
type APIHandler struct {
	service *app.QuizService
	log     *logger.Logger
}

func NewAPIHandler(service *app.QuizService, log *logger.Logger) *APIHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &APIHandler{service: service, log: log}
}

// Register mounts the JSON routes on mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/courses/{courseId}/leaderboard", h.Leaderboard)
	mux.HandleFunc("GET /api/enrollments", h.Enrollments)
}

func (h *APIHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseId")
	board, err := h.service.Leaderboard(r.Context(), courseID)
	if err != nil {
		h.log.Error("leaderboard lookup failed", "course_id", courseID, "error", err)
		http.Error(w, "leaderboard unavailable", http.StatusServiceUnavailable)
		return
	}
	h.writeJSON(w, board)
}

func (h *APIHandler) Enrollments(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.Enrollments(r.Context())
	if err != nil {
		h.log.Error("enrollment lookup failed", "error", err)
		http.Error(w, "enrollments unavailable", http.StatusServiceUnavailable)
		return
	}
	h.writeJSON(w, courses)
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("write response failed", "error", err)
	}
}
