package middleware

import (
	"net/http"
	"runtime"

	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
	"github.com/labstack/echo/v4"
)

const stackBufferSize = 4 << 10

// PanicRecovery 핸들러와 이후 미들웨어에서 발생한 panic을 복구합니다.
//
// 복구한 값은 스택 트레이스와 함께 Error 레벨로 기록하고 Internal 에러로 변환해
// 전역 에러 핸들러(500 응답)로 넘깁니다. 체인의 가장 앞에 등록해야 합니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				// http.ErrAbortHandler 는 net/http 가 처리하도록 다시 던집니다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				stack := make([]byte, stackBufferSize)
				stack = stack[:runtime.Stack(stack, false)]

				recovered := NewErrPanicRecovered(r)

				fields := applog.Fields{
					"error": recovered,
					"stack": string(stack),
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddleware, fields).Error(constants.LogMsgPanicRecovered)

				c.Error(recovered)
				err = nil
			}()

			return next(c)
		}
	}
}
