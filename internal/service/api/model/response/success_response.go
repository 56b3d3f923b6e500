package response

// SuccessResponse 본문 없이 성공만 알리는 응답
type SuccessResponse struct {
	ResultCode int    `json:"result_code" example:"200"`
	Message    string `json:"message,omitempty" example:"성공"`
}
