package handler

import (
	"net/http"
	"strconv"

	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	"github.com/kvishnublr/GetroRepo/internal/service/api/v1/model/response"
	"github.com/kvishnublr/GetroRepo/internal/trackingnum"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
	"github.com/labstack/echo/v4"
)

// IssueTrackingNumbersHandler godoc
// @Summary 추적 번호 발급
// @Description 추적 번호를 count 개 발급합니다. count를 생략하면 1개를 발급합니다.
// @Description
// @Description 추적 번호 형식: `<호스트 이름>-<UUID 앞 8자>-<epoch 밀리초>-<6자리 시퀀스>`
// @Description
// @Description ## 사용 예시 (로컬 환경)
// @Description ```bash
// @Description curl -X POST "http://localhost:8080/api/v1/tracking-numbers?count=3"
// @Description ```
// @Tags TrackingNumber
// @Produce json
// @Param count query int false "발급할 개수 (1 이상 api.max_batch_size 이하)" default(1) minimum(1)
// @Success 200 {object} response.IssueResponse "발급 성공"
// @Failure 400 {object} response.ErrorResponse "count 범위 오류"
// @Failure 429 {object} response.ErrorResponse "요청 빈도 초과"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/tracking-numbers [post]
func (h *Handler) IssueTrackingNumbersHandler(c echo.Context) error {
	count, err := h.parseCount(c.QueryParam(constants.QueryParamCount))
	if err != nil {
		return err
	}

	ids := h.issuer.NextN(count)

	h.log(c).WithFields(applog.Fields{
		"count": count,
		"first": ids[0],
	}).Debug(constants.LogMsgTrackingNumbersIssue)

	return c.JSON(http.StatusOK, response.IssueResponse{
		ResultCode:      http.StatusOK,
		TrackingNumbers: ids,
	})
}

// parseCount count 쿼리 파라미터를 해석합니다. 비어 있으면 1입니다.
func (h *Handler) parseCount(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 || count > h.maxBatchSize {
		return 0, NewErrInvalidCount(h.maxBatchSize)
	}

	return count, nil
}

// ParseTrackingNumberHandler godoc
// @Summary 추적 번호 분해
// @Description 추적 번호를 노드 식별자, 발급 시각, 시퀀스로 분해합니다.
// @Tags TrackingNumber
// @Produce json
// @Param id path string true "추적 번호" example(web-01-ab12cd34-1700000000000-000042)
// @Success 200 {object} response.ParseResponse "분해 결과"
// @Failure 400 {object} response.ErrorResponse "형식이 올바르지 않은 추적 번호"
// @Router /api/v1/tracking-numbers/{id} [get]
func (h *Handler) ParseTrackingNumberHandler(c echo.Context) error {
	id := c.Param(constants.PathParamID)
	if id == "" {
		return ErrTrackingNumberMissing
	}

	tn, err := trackingnum.Parse(id)
	if err != nil {
		// InvalidInput 에러는 전역 에러 핸들러에서 400으로 변환됩니다.
		return err
	}

	h.log(c).WithField("tracking_number", id).Debug(constants.LogMsgTrackingNumberParse)

	return c.JSON(http.StatusOK, response.ParseResponse{
		ResultCode:     http.StatusOK,
		TrackingNumber: tn.String(),
		Node:           tn.Node.String(),
		Timestamp:      tn.Timestamp,
		IssuedAt:       tn.Time().UTC(),
		Sequence:       tn.Sequence,
	})
}
