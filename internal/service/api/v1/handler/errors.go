package handler

import (
	"fmt"

	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	"github.com/kvishnublr/GetroRepo/internal/service/api/httputil"
)

// ErrTrackingNumberMissing 경로에 추적 번호가 없을 때 반환하는 400 에러입니다.
var ErrTrackingNumberMissing = httputil.NewBadRequestError(constants.ErrMsgTrackingNumberMissing)

// NewErrInvalidCount count 파라미터가 허용 범위를 벗어났을 때 반환하는 400 에러를 생성합니다.
func NewErrInvalidCount(maxBatchSize int) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgInvalidCount, maxBatchSize))
}
