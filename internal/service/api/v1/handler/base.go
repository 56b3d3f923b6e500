// Package handler v1 API의 추적 번호 발급/조회 핸들러를 제공합니다.
package handler

import (
	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
	"github.com/labstack/echo/v4"
)

// Issuer 추적 번호를 발급합니다.
type Issuer interface {
	NextN(n int) []string
}

// Handler v1 API 요청을 처리합니다.
type Handler struct {
	issuer Issuer

	// maxBatchSize 한 번의 요청으로 발급할 수 있는 최대 개수
	maxBatchSize int
}

// NewHandler Handler를 생성합니다.
// issuer 가 nil이면 panic 하며, maxBatchSize 가 양수가 아니면 기본값을 사용합니다.
func NewHandler(issuer Issuer, maxBatchSize int) *Handler {
	if issuer == nil {
		panic(constants.PanicMsgGeneratorRequired)
	}
	if maxBatchSize <= 0 {
		maxBatchSize = constants.DefaultMaxBatchSize
	}

	return &Handler{
		issuer:       issuer,
		maxBatchSize: maxBatchSize,
	}
}

// log 공통 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"remote_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
