package handlers

import (
	"errors"
	"net/http"

	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"
	"vocab_drill/internal/service"
	"vocab_drill/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

// PostWord は新しい単語カードを作成します
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PostWord")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	var req model.PostWordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	word, err := h.service.CreateWord(r.Context(), tenantID, &req)
	if err != nil {
		logger.Error("Error creating word in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word posted successfully", "word_id", word.WordID)
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

// GetWords は単語一覧を返します。theme_id で絞り込めます。
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetWords")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	words, err := h.service.ListWords(r.Context(), tenantID, r.URL.Query().Get("theme_id"))
	if err != nil {
		logger.Error("Error listing words in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	if words == nil {
		words = []*model.WordCard{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetWord")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, err := webutil.ParseUUIDParam(chi.URLParam(r, "word_id"), "word_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.GetWord(r.Context(), tenantID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Word not found", "word_id", wordID)
		} else {
			logger.Error("Error getting word from service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// PutWord は単語の内容を置き換えます。学習統計はそのまま残ります。
func (h *WordHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PutWord")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, err := webutil.ParseUUIDParam(chi.URLParam(r, "word_id"), "word_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PutWordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	word, err := h.service.UpdateWord(r.Context(), tenantID, wordID, &req)
	if err != nil {
		logger.Warn("Error updating word in service", "error", err, "word_id", wordID)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

func (h *WordHandler) PatchWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PatchWord")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, err := webutil.ParseUUIDParam(chi.URLParam(r, "word_id"), "word_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchWordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	word, err := h.service.PatchWord(r.Context(), tenantID, wordID, &req)
	if err != nil {
		logger.Warn("Error patching word in service", "error", err, "word_id", wordID)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteWord")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, err := webutil.ParseUUIDParam(chi.URLParam(r, "word_id"), "word_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteWord(r.Context(), tenantID, wordID); err != nil {
		logger.Warn("Error deleting word in service", "error", err, "word_id", wordID)
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
