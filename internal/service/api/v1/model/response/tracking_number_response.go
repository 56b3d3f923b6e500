// Package response v1 API 응답 본문 타입을 정의합니다.
package response

import (
	"time"

	apiresponse "github.com/kvishnublr/GetroRepo/internal/service/api/model/response"
)

// ErrorResponse 공통 에러 응답과 같은 형식입니다.
type ErrorResponse = apiresponse.ErrorResponse

// IssueResponse POST /api/v1/tracking-numbers 응답
type IssueResponse struct {
	ResultCode      int      `json:"result_code" example:"200"`
	TrackingNumbers []string `json:"tracking_numbers" example:"web-01-ab12cd34-1700000000000-000042"`
}

// ParseResponse GET /api/v1/tracking-numbers/{id} 응답
type ParseResponse struct {
	ResultCode     int       `json:"result_code" example:"200"`
	TrackingNumber string    `json:"tracking_number" example:"web-01-ab12cd34-1700000000000-000042"`
	Node           string    `json:"node" example:"web-01-ab12cd34"`
	Timestamp      int64     `json:"timestamp" example:"1700000000000"`
	IssuedAt       time.Time `json:"issued_at" example:"2023-11-14T22:13:20Z"`
	Sequence       int64     `json:"sequence" example:"42"`
}
