package handlers

import (
	"net/http"

	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"
	"vocab_drill/internal/service"
	"vocab_drill/internal/webutil"
)

type ProgressHandler struct {
	progress        service.ProgressService
	recommendations service.RecommendationService
}

func NewProgressHandler(progress service.ProgressService, recommendations service.RecommendationService) *ProgressHandler {
	return &ProgressHandler{
		progress:        progress,
		recommendations: recommendations,
	}
}

// GetProgress は進捗と分析値を返します
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetProgress")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.progress.GetProgress(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error getting progress in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetRecommendations は復習の優先度が高い単語を返します。theme_id で絞り込めます。
func (h *ProgressHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetRecommendations")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	recs, err := h.recommendations.GetRecommendations(r.Context(), tenantID, r.URL.Query().Get("theme_id"))
	if err != nil {
		logger.Error("Error getting recommendations in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	if recs == nil {
		recs = []model.RecommendationEntry{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, recs, logger)
}
