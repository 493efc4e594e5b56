//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"vocab_drill/internal/config"
	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"
	"vocab_drill/internal/seed"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Tenant, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	db           *gorm.DB
	tenantRepo   repository.TenantRepository
	themeRepo    repository.ThemeRepository
	wordRepo     repository.WordRepository
	progressRepo repository.ProgressRepository
	jwtCfg       config.JWTConfig
	now          func() time.Time
}

func NewAuthService(
	db *gorm.DB,
	tenantRepo repository.TenantRepository,
	themeRepo repository.ThemeRepository,
	wordRepo repository.WordRepository,
	progressRepo repository.ProgressRepository,
	jwtCfg config.JWTConfig,
) AuthService {
	return &authService{
		db:           db,
		tenantRepo:   tenantRepo,
		themeRepo:    themeRepo,
		wordRepo:     wordRepo,
		progressRepo: progressRepo,
		jwtCfg:       jwtCfg,
		now:          time.Now,
	}
}

// Register はテナントを作成し、初期テーマ・初期単語・進捗を同じトランザクションで用意します。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	var newTenant *model.Tenant

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.tenantRepo.FindByEmail(ctx, tx, email)
		if err == nil {
			logger.Warn("Email already exists", "email", email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		tenant := &model.Tenant{
			TenantID:     uuid.New(),
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			PasswordHash: string(hashedPassword),
			IsActive:     true,
		}
		if err := s.tenantRepo.Create(ctx, tx, tenant); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_ENTRY", "指定された名前またはEmailは既に使用されています。", "name,email", model.ErrConflict)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}

		now := s.now()
		if err := s.themeRepo.Create(ctx, tx, seed.StarterThemes(tenant.TenantID, now)...); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "初期テーマの作成に失敗しました。", "", err)
		}
		if err := s.wordRepo.Create(ctx, tx, seed.StarterWords(tenant.TenantID, now)...); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "初期単語の作成に失敗しました。", "", err)
		}
		progress := &model.UserProgress{
			TenantID:     tenant.TenantID,
			Achievements: model.DefaultAchievements(tenant.TenantID),
		}
		if err := s.progressRepo.Create(ctx, tx, progress); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の作成に失敗しました。", "", err)
		}

		newTenant = tenant
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Tenant registered with starter deck", "tenant_id", newTenant.TenantID, "email", newTenant.Email)
	return newTenant, nil
}

// Login はユーザーを認証し、JWTを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	logger := middleware.GetLogger(ctx).With("email", email)

	tenant, err := s.tenantRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "tenant_id", tenant.TenantID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
	}

	if !tenant.IsActive {
		logger.Warn("Login failed: account not active", "tenant_id", tenant.TenantID)
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "アカウントが無効化されています。", "", model.ErrForbidden)
	}

	now := s.now()
	ttl := time.Duration(s.jwtCfg.ExpirationHours) * time.Hour
	claims := &model.JWTCustomClaims{
		Name: tenant.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   tenant.TenantID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "tenant_id", tenant.TenantID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", "tenant_id", tenant.TenantID)
	return &model.LoginResponse{
		AccessToken: signedToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}
