package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestServer(cfg HTTPServerConfig) *echo.Echo {
	e := NewHTTPServer(cfg)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})
	e.GET("/slow", func(c echo.Context) error {
		select {
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		case <-time.After(time.Second):
			return c.String(http.StatusOK, "late")
		}
	})
	return e
}

func TestNewHTTPServer_Configuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config HTTPServerConfig
	}{
		{name: "Debug 모드", config: HTTPServerConfig{Debug: true}},
		{name: "일반 모드", config: HTTPServerConfig{Debug: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewHTTPServer(tt.config)

			assert.Equal(t, tt.config.Debug, e.Debug)
			assert.True(t, e.HideBanner)
			assert.True(t, e.HidePort)
			assert.Equal(t, constants.DefaultReadTimeout, e.Server.ReadTimeout)
			assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
			assert.Equal(t, constants.DefaultWriteTimeout, e.Server.WriteTimeout)
			assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
			assert.NotNil(t, e.HTTPErrorHandler)
		})
	}
}

func TestNewHTTPServer_StandardHeaders(t *testing.T) {
	t.Parallel()

	e := newTestServer(HTTPServerConfig{AllowOrigins: []string{"*"}})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID), "Request ID가 부여되어야 합니다")
	assert.Empty(t, rec.Header().Get(echo.HeaderServer))
	assert.Equal(t, "1; mode=block", rec.Header().Get(echo.HeaderXXSSProtection))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
}

func TestNewHTTPServer_CORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		allowOrigins  []string
		origin        string
		expectedAllow string
	}{
		{"와일드카드 허용", []string{"*"}, "http://any.example", "*"},
		{"허용된 Origin", []string{"https://ops.example.com"}, "https://ops.example.com", "https://ops.example.com"},
		{"허용되지 않은 Origin", []string{"https://ops.example.com"}, "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestServer(HTTPServerConfig{AllowOrigins: tt.allowOrigins})

			req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
			req.Header.Set(echo.HeaderOrigin, tt.origin)
			req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedAllow, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestNewHTTPServer_PanicRecovery(t *testing.T) {
	t.Parallel()

	e := newTestServer(HTTPServerConfig{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, int64(http.StatusInternalServerError), gjson.Get(rec.Body.String(), "result_code").Int())
}

func TestNewHTTPServer_RateLimit(t *testing.T) {
	t.Parallel()

	e := newTestServer(HTTPServerConfig{RateLimitPerSecond: 0.001, RateLimitBurst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	t.Parallel()

	e := newTestServer(HTTPServerConfig{RequestTimeout: 20 * time.Millisecond})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewHTTPServer_UnknownRoute(t *testing.T) {
	t.Parallel()

	e := newTestServer(HTTPServerConfig{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constants.ErrMsgNotFound, gjson.Get(rec.Body.String(), "message").String())
}
