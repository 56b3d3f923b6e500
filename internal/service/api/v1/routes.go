// Package v1 추적 번호 API v1 라우트를 등록합니다.
package v1

import (
	"github.com/kvishnublr/GetroRepo/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes /api/v1 그룹에 추적 번호 엔드포인트를 등록합니다.
//
//   - POST /api/v1/tracking-numbers?count=N: 추적 번호 발급
//   - GET  /api/v1/tracking-numbers/:id: 추적 번호 분해
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	if h == nil {
		panic("v1.RegisterRoutes: Handler는 필수입니다")
	}

	g := e.Group("/api/v1")

	g.POST("/tracking-numbers", h.IssueTrackingNumbersHandler)
	g.GET("/tracking-numbers/:id", h.ParseTrackingNumberHandler)
}
