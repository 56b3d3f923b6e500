package system

// DependencyStatus 의존성 하나의 상태
type DependencyStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:"정상 작동 중"`

	// Issued 생성기 기동 이후 발급한 추적 번호 수
	Issued uint64 `json:"issued,omitempty" example:"12345"`

	// Wraparounds 시퀀스가 0으로 되돌아간 횟수
	Wraparounds uint64 `json:"wraparounds,omitempty" example:"0"`
}
