package handlers

import (
	"net/http"

	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"
	"vocab_drill/internal/service"
	"vocab_drill/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ThemeHandler struct {
	service service.ThemeService
}

func NewThemeHandler(s service.ThemeService) *ThemeHandler {
	return &ThemeHandler{service: s}
}

// GetThemes はテーマ一覧を単語数つきで返します
func (h *ThemeHandler) GetThemes(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetThemes")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	themes, err := h.service.ListThemes(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error listing themes in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	if themes == nil {
		themes = []*model.Theme{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, themes, logger)
}

func (h *ThemeHandler) PostTheme(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PostTheme")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	var req model.PostThemeRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	theme, err := h.service.CreateTheme(r.Context(), tenantID, &req)
	if err != nil {
		logger.Warn("Error creating theme in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, theme, logger)
}

func (h *ThemeHandler) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "DeleteTheme")
	tenantID, ok := tenantFromRequest(w, r, logger)
	if !ok {
		return
	}

	themeID := chi.URLParam(r, "theme_id")
	if err := h.service.DeleteTheme(r.Context(), tenantID, themeID); err != nil {
		logger.Warn("Error deleting theme in service", "error", err, "theme_id", themeID)
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
