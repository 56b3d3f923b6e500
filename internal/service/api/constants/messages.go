package constants

// 클라이언트에게 반환하는 에러 메시지
const (
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgInvalidCount          = "count는 1 이상 %d 이하의 정수여야 합니다"
	ErrMsgTrackingNumberMissing = "추적 번호가 비어 있습니다"

	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	ErrMsgInternalServer     = "내부 서버 오류가 발생했습니다"
	ErrMsgServiceUnavailable = "추적 번호 생성기를 사용할 수 없습니다. 관리자에게 문의해 주세요"
)

// 생성자 인자 검증 실패 시 panic 메시지
const (
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"
	PanicMsgGeneratorRequired = "Generator는 필수입니다"

	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: %v)"
	PanicMsgRateLimitBurstInvalid             = "RateLimiting: burst는 양수여야 합니다 (현재값: %d)"
)
