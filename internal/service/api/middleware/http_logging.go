package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
	"github.com/labstack/echo/v4"
)

// HTTPLogger 요청마다 한 줄의 구조화 로그를 남기는 미들웨어를 반환합니다.
//
// 핸들러 에러는 c.Error 로 먼저 응답에 반영한 뒤 기록하므로 로그의 status 는
// 클라이언트가 실제로 받은 상태 코드입니다. 쿼리 문자열의 민감한 값은 가려서 남깁니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			logRequest(c, time.Since(start))

			return nil
		}
	}
}

func logRequest(c echo.Context, latency time.Duration) {
	req := c.Request()
	res := c.Response()

	path := req.URL.Path
	if path == "" {
		path = "/"
	}

	bytesIn := req.Header.Get(echo.HeaderContentLength)
	if bytesIn == "" {
		bytesIn = "0"
	}

	applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
		"method":   req.Method,
		"path":     path,
		"uri":      maskSensitiveQueryParams(req.RequestURI),
		"host":     req.Host,
		"protocol": req.Proto,

		"remote_ip":  c.RealIP(),
		"user_agent": req.UserAgent(),

		"status":    res.Status,
		"bytes_in":  bytesIn,
		"bytes_out": strconv.FormatInt(res.Size, 10),

		"latency_us":    latency.Microseconds(),
		"latency_human": latency.String(),

		"request_id": res.Header().Get(echo.HeaderXRequestID),
	}).Info(constants.LogMsgHTTPRequest)
}

// maskSensitiveQueryParams URI 쿼리 중 민감한 파라미터 값을 가립니다.
// 파싱할 수 없거나 가릴 값이 없으면 원본을 그대로 반환합니다.
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range constants.SensitiveQueryParams {
		if !q.Has(param) {
			continue
		}
		q.Set(param, applog.MaskSensitiveData(q.Get(param)))
		masked = true
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
