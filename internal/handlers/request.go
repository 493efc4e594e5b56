package handlers

import (
	"log/slog"
	"net/http"

	"vocab_drill/internal/middleware"
	"vocab_drill/internal/webutil"

	"github.com/google/uuid"
)

// tenantFromRequest は認証ミドルウェアが設定したテナントIDを取り出します。取れなければエラーを書き込みます。
func tenantFromRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Error("Tenant ID missing from context", "error", err)
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return tenantID, true
}

// decodeAndValidate はボディをデコードしてバリデーションします。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		webutil.HandleError(w, logger, err)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", "error", err)
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
