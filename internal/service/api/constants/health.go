package constants

// HealthStatusHealthy 헬스체크 정상 상태 값
const HealthStatusHealthy = "healthy"

// 헬스체크 의존성 이름과 메시지
const (
	DependencyGenerator = "tracking_number_generator"

	MsgDepStatusHealthy = "정상 작동 중"
)
