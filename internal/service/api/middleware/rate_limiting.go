package middleware

import (
	"fmt"
	"sync"

	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// maxTrackedIPs 메모리 사용량을 제한하기 위해 동시에 추적하는 최대 IP 수
// 초과하면 추적 중인 리미터를 모두 비우고 다시 시작합니다.
const maxTrackedIPs = 10000

// ipRateLimiter IP 주소별 토큰 버킷 리미터를 관리합니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter

	limit rate.Limit
	burst int
}

func newIPRateLimiter(requestsPerSecond float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (i *ipRateLimiter) limiterFor(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, ok := i.limiters[ip]
	i.mu.RUnlock()
	if ok {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// 잠금을 기다리는 사이에 다른 고루틴이 만들었을 수 있습니다.
	if limiter, ok = i.limiters[ip]; ok {
		return limiter
	}

	if len(i.limiters) >= maxTrackedIPs {
		clear(i.limiters)
	}

	limiter = rate.NewLimiter(i.limit, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

func (i *ipRateLimiter) size() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.limiters)
}

// RateLimiting 클라이언트 IP마다 초당 requestsPerSecond 건, 최대 burst 건의 요청을 허용합니다.
// 한도를 넘은 요청에는 Retry-After 헤더와 함께 429를 반환합니다.
//
// requestsPerSecond 또는 burst 가 양수가 아니면 panic 합니다.
func RateLimiting(requestsPerSecond float64, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.limiterFor(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set(echo.HeaderRetryAfter, "1")

				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
