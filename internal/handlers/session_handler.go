package handlers

import (
	"net/http"
	"strconv"

	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"
	"vocab_drill/internal/service"
	"vocab_drill/internal/webutil"

	"github.com/go-chi/chi/v5"
)

const (
	defaultSessionListLimit = 20
	maxSessionListLimit     = 100
)

type SessionHandler struct {
	service service.PracticeService
}

func NewSessionHandler(s service.PracticeService) *SessionHandler {
	return &SessionHandler{service: s}
}

// StartSession は練習セッションを開始し、出題する単語を返します
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "StartSession")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	var req model.StartSessionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.StartSession(r.Context(), tenantID, &req)
	if err != nil {
		logger.Warn("Failed to start session", "error", err, "theme_id", req.ThemeID)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// CompleteSession は回答を受け取ってセッションを完了させます
func (h *SessionHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CompleteSession")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	sessionID, err := webutil.ParseUUIDParam(chi.URLParam(r, "session_id"), "session_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CompleteSessionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.CompleteSession(r.Context(), tenantID, sessionID, &req)
	if err != nil {
		logger.Warn("Failed to complete session", "error", err, "session_id", sessionID)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetSessions は完了したセッションを新しい順に返します
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetSessions")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	limit := defaultSessionListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSessionListLimit {
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limit は1から100の整数で指定してください。", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = n
	}

	sessions, err := h.service.ListSessions(r.Context(), tenantID, limit)
	if err != nil {
		logger.Error("Error listing sessions in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	if sessions == nil {
		sessions = []*model.PracticeSession{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, sessions, logger)
}
