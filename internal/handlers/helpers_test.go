package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vocab_drill/internal/config"
	"vocab_drill/internal/handlers"
	"vocab_drill/internal/model"
	servicemocks "vocab_drill/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// mockServices はサービスをすべてモックにしたルーターを組み立てます。認証は X-Tenant-ID ヘッダーで行います。
type mockServices struct {
	auth           *servicemocks.AuthService
	theme          *servicemocks.ThemeService
	word           *servicemocks.WordService
	practice       *servicemocks.PracticeService
	progress       *servicemocks.ProgressService
	recommendation *servicemocks.RecommendationService
	router         http.Handler
}

func newMockRouter(t *testing.T) *mockServices {
	t.Helper()
	m := &mockServices{
		auth:           new(servicemocks.AuthService),
		theme:          new(servicemocks.ThemeService),
		word:           new(servicemocks.WordService),
		practice:       new(servicemocks.PracticeService),
		progress:       new(servicemocks.ProgressService),
		recommendation: new(servicemocks.RecommendationService),
	}
	cfg := &config.Config{}
	cfg.Auth.Enabled = false
	m.router = handlers.NewRouter(cfg, nil, handlers.Services{
		Auth:           m.auth,
		Theme:          m.theme,
		Word:           m.word,
		Practice:       m.practice,
		Progress:       m.progress,
		Recommendation: m.recommendation,
	}, testLogger)
	t.Cleanup(func() {
		m.auth.AssertExpectations(t)
		m.theme.AssertExpectations(t)
		m.word.AssertExpectations(t)
		m.practice.AssertExpectations(t)
		m.progress.AssertExpectations(t)
		m.recommendation.AssertExpectations(t)
	})
	return m
}

// doRequest はルーターにリクエストを送ります。body が string ならそのまま送ります。
func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func tenantHeader(id uuid.UUID) map[string]string {
	return map[string]string{"X-Tenant-ID": id.String()}
}

// assertErrorResponse はエラーレスポンスのステータスとコードを検証します。
func assertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) model.ErrorDetail {
	t.Helper()
	assert.Equal(t, wantStatus, rec.Code, rec.Body.String())
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, wantCode, resp.Error.Code)
	return resp.Error
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
