package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (호스트 정보 조회, 파일 I/O 등)
	System

	// InvalidInput 잘못된 입력값 (설정값 검증 실패, 잘못된 식별자 형식 등)
	InvalidInput

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// Unavailable 서비스 일시적 사용 불가 (초기화 실패 상태 등)
	Unavailable
)

// String ErrorType의 이름을 반환합니다.
func (t ErrorType) String() string {
	switch t {
	case Internal:
		return "Internal"
	case System:
		return "System"
	case InvalidInput:
		return "InvalidInput"
	case NotFound:
		return "NotFound"
	case Unavailable:
		return "Unavailable"
	case Unknown:
		return "Unknown"
	default:
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
}
