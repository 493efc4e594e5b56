package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"vocab_drill/internal/config"
	"vocab_drill/internal/middleware"
	"vocab_drill/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// Services はルーターが使うサービスの集まり
type Services struct {
	Auth           service.AuthService
	Theme          service.ThemeService
	Word           service.WordService
	Practice       service.PracticeService
	Progress       service.ProgressService
	Recommendation service.RecommendationService
}

// NewRouter はミドルウェアとAPIルートを組み立てます
func NewRouter(cfg *config.Config, db *gorm.DB, svc Services, logger *slog.Logger) http.Handler {
	authHandler := NewAuthHandler(svc.Auth)
	themeHandler := NewThemeHandler(svc.Theme)
	wordHandler := NewWordHandler(svc.Word)
	sessionHandler := NewSessionHandler(svc.Practice)
	progressHandler := NewProgressHandler(svc.Progress, svc.Recommendation)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				logger.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(cfg.JWT))
			} else {
				logger.Warn("Authentication disabled, using X-Tenant-ID header")
				r.Use(middleware.DevTenantContextMiddleware)
			}

			r.Route("/themes", func(r chi.Router) {
				r.Get("/", themeHandler.GetThemes)
				r.Post("/", themeHandler.PostTheme)
				r.Delete("/{theme_id}", themeHandler.DeleteTheme)
			})

			r.Route("/words", func(r chi.Router) {
				r.Post("/", wordHandler.PostWord)
				r.Get("/", wordHandler.GetWords)
				r.Get("/{word_id}", wordHandler.GetWord)
				r.Put("/{word_id}", wordHandler.PutWord)
				r.Patch("/{word_id}", wordHandler.PatchWord)
				r.Delete("/{word_id}", wordHandler.DeleteWord)
			})

			r.Get("/recommendations", progressHandler.GetRecommendations)

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", sessionHandler.StartSession)
				r.Get("/", sessionHandler.GetSessions)
				r.Post("/{session_id}/complete", sessionHandler.CompleteSession)
			})

			r.Get("/progress", progressHandler.GetProgress)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
