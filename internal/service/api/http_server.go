package api

import (
	"net/http"
	"time"

	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	"github.com/kvishnublr/GetroRepo/internal/service/api/httputil"
	appmiddleware "github.com/kvishnublr/GetroRepo/internal/service/api/middleware"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정
type HTTPServerConfig struct {
	// Debug Echo 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS TLS 서버로 동작할 때 Strict-Transport-Security 헤더를 추가할지 여부
	EnableHSTS bool

	// AllowOrigins CORS 허용 Origin 목록
	AllowOrigins []string

	// RequestTimeout 요청 하나의 최대 처리 시간 (0이면 기본값)
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP별 요청 제한 (0이면 기본값)
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// NewHTTPServer 미들웨어 체인이 설정된 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다.
//
//  1. PanicRecovery: 이후 모든 미들웨어와 핸들러의 panic을 복구하므로 가장 앞에 둡니다.
//  2. RequestID: 요청마다 X-Request-Id 를 부여합니다. 로그에 포함되도록 로깅보다 앞에 둡니다.
//  3. Server 헤더 제거
//  4. HTTPLogger: 이후 단계에서 거절된 429/503 응답도 기록하도록 RateLimiting 앞에 둡니다.
//  5. RateLimiting: IP별 요청 제한 (429)
//  6. BodyLimit: 요청 본문 크기 제한 (413)
//  7. ContextTimeout: 요청 컨텍스트에 처리 시간 제한을 걸고, 초과하면 503
//  8. CORS
//  9. Secure: 보안 헤더 (TLS 사용 시 HSTS 포함)
//
// 라우트는 포함하지 않습니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.NewEchoLogger(applog.StandardLogger())
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	rps := cfg.RateLimitPerSecond
	if rps <= 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	secure := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secure.HSTSMaxAge = constants.HSTSMaxAge
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestID())
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. Rate Limiting
	e.Use(appmiddleware.RateLimiting(rps, burst))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 7. Timeout
	e.Use(middleware.ContextTimeout(timeout))
	// 8. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	// 9. 보안 헤더
	e.Use(middleware.SecureWithConfig(secure))

	return e
}
