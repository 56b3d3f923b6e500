package system

// HealthResponse GET /health 응답
type HealthResponse struct {
	// Status 서버 전체 상태 (healthy)
	Status string `json:"status" example:"healthy"`

	// Uptime 서버 가동 시간 (초)
	Uptime int64 `json:"uptime" example:"3600"`

	// Node 이 프로세스의 노드 식별자
	Node string `json:"node,omitempty" example:"web-01-ab12cd34"`

	// Dependencies 의존성별 상태
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}
