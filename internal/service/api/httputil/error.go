// Package httputil API 응답과 에러 처리를 위한 공통 유틸리티를 제공합니다.
package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	"github.com/kvishnublr/GetroRepo/internal/service/api/model/response"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo의 전역 HTTP 에러 핸들러입니다.
//
// 모든 에러 응답을 {"result_code": ..., "message": ...} 형식으로 통일합니다.
// 핸들러가 반환한 에러의 종류에 따라 상태 코드를 결정합니다.
//
//   - *echo.HTTPError: 지정된 코드와 메시지를 그대로 사용
//   - apperrors.AppError: 체인 가장 안쪽의 ErrorType으로 상태 코드를 결정 (StatusCode 참고)
//   - 그 외: 500
//
// 5xx 응답에는 내부 메시지를 노출하지 않고 일반 메시지를 사용합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		if stack := apperrors.Stack(err); stack != nil {
			fields["stack"] = stack
		}
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 중복 전송하지 않습니다.
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := constants.ErrMsgInternalServer
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}

		// Echo 라우터가 만든 404는 영문 기본 메시지를 가지고 있습니다.
		if he.Code == http.StatusNotFound {
			if _, ok := he.Message.(response.ErrorResponse); !ok {
				message = constants.ErrMsgNotFound
			}
		}

		return he.Code, message
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code := StatusCode(apperrors.UnderlyingType(err))
		if code >= http.StatusInternalServerError {
			if code == http.StatusServiceUnavailable {
				return code, constants.ErrMsgServiceUnavailable
			}
			return code, constants.ErrMsgInternalServer
		}
		return code, appErr.Message()
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}

// StatusCode ErrorType에 대응하는 HTTP 상태 코드를 반환합니다.
func StatusCode(t apperrors.ErrorType) int {
	switch t {
	case apperrors.InvalidInput:
		return http.StatusBadRequest
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
