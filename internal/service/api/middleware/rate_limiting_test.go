package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/kvishnublr/GetroRepo/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

func newRateLimitedEcho(rps float64, burst int) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.Use(RateLimiting(rps, burst))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func doRequest(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNewIPRateLimiter(t *testing.T) {
	t.Parallel()

	l := newIPRateLimiter(2.5, 5)
	assert.Equal(t, rate.Limit(2.5), l.limit)
	assert.Equal(t, 5, l.burst)

	first := l.limiterFor("10.0.0.1")
	assert.Same(t, first, l.limiterFor("10.0.0.1"), "같은 IP는 같은 리미터를 사용해야 합니다")
	assert.NotSame(t, first, l.limiterFor("10.0.0.2"))
	assert.Equal(t, 2, l.size())
}

func TestRateLimiting_InputValidation(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { RateLimiting(0, 1) })
	assert.Panics(t, func() { RateLimiting(-1, 1) })
	assert.Panics(t, func() { RateLimiting(1, 0) })
	assert.NotPanics(t, func() { RateLimiting(0.5, 1) })
}

func TestRateLimiting_BurstThenReject(t *testing.T) {
	t.Parallel()

	// 초당 0.001건이면 테스트 중에는 토큰이 다시 채워지지 않습니다.
	e := newRateLimitedEcho(0.001, 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(e, "192.0.2.1").Code, "버스트 이내 요청 %d", i+1)
	}

	rec := doRequest(e, "192.0.2.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(echo.HeaderRetryAfter))
	assert.Equal(t, int64(http.StatusTooManyRequests), gjson.Get(rec.Body.String(), "result_code").Int())

	// 다른 IP는 독립적인 한도를 가집니다.
	assert.Equal(t, http.StatusOK, doRequest(e, "192.0.2.2").Code)
}

func TestRateLimiting_Concurrency(t *testing.T) {
	t.Parallel()

	const (
		burst      = 50
		goroutines = 200
	)
	e := newRateLimitedEcho(0.001, burst)

	var ok, limited atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch doRequest(e, "198.51.100.7").Code {
			case http.StatusOK:
				ok.Add(1)
			case http.StatusTooManyRequests:
				limited.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, burst, ok.Load())
	assert.EqualValues(t, goroutines-burst, limited.Load())
}

func TestIPRateLimiter_MaxTrackedIPs(t *testing.T) {
	t.Parallel()

	l := newIPRateLimiter(1, 1)
	for i := 0; i < maxTrackedIPs; i++ {
		l.limiterFor("10.0." + strconv.Itoa(i))
	}
	assert.Equal(t, maxTrackedIPs, l.size())

	// 한도를 넘으면 기존 항목을 비우고 새 IP만 남습니다.
	l.limiterFor("overflow")
	assert.Equal(t, 1, l.size())
}
