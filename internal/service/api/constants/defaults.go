package constants

import "time"

// HTTP 서버 기본값
const (
	// DefaultRequestTimeout 설정에 요청 처리 제한 시간이 없을 때 사용하는 값
	DefaultRequestTimeout = 10 * time.Second

	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultMaxBodySize 발급/조회 API는 본문을 받지 않으므로 작게 유지합니다.
	DefaultMaxBodySize = "16K"

	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40

	// DefaultMaxBatchSize 한 번의 요청으로 발급할 수 있는 추적 번호의 기본 최대 개수
	DefaultMaxBatchSize = 1000

	// HSTSMaxAge TLS 서버로 동작할 때 Strict-Transport-Security 헤더에 쓰는 값 (1년)
	HSTSMaxAge = 31536000
)
