package response

// ErrorResponse API 에러 응답 본문
type ErrorResponse struct {
	// ResultCode HTTP 상태 코드와 같은 값
	ResultCode int `json:"result_code" example:"400"`

	// Message 사용자에게 보여줄 에러 메시지
	Message string `json:"message" example:"count는 1 이상 1000 이하의 정수여야 합니다"`
}
