package middleware

import (
	"fmt"

	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	"github.com/kvishnublr/GetroRepo/internal/service/api/httputil"
)

// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환하는 429 에러입니다.
var ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

// NewErrPanicRecovered 복구한 panic 값을 Internal 에러로 변환합니다.
func NewErrPanicRecovered(r any) error {
	if err, ok := r.(error); ok {
		return apperrors.Wrap(err, apperrors.Internal, "요청 처리 중 panic 발생")
	}
	return apperrors.New(apperrors.Internal, fmt.Sprintf("요청 처리 중 panic 발생: %v", r))
}
