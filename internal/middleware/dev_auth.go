package middleware

import (
	"net/http"

	"vocab_drill/internal/model"
	"vocab_drill/internal/webutil"

	"github.com/google/uuid"
)

// DevTenantContextMiddleware は開発時用ミドルウェアです。
// X-Tenant-ID ヘッダーのUUIDをそのままコンテキストに設定し、DBでの存在チェックは行いません。
func DevTenantContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		tenantIDStr := r.Header.Get("X-Tenant-ID")
		if tenantIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-Tenant-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Tenant-IDヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		tenantID, err := uuid.Parse(tenantIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-Tenant-ID format", "tenant_id", tenantIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Tenant-IDの形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] Tenant ID set to context (no validation)", "tenant_id", tenantID.String())
		next.ServeHTTP(w, r.WithContext(withTenant(r.Context(), tenantID)))
	})
}
