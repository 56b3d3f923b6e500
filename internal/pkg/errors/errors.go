// Package errors 애플리케이션 전용 에러 타입을 제공합니다.
//
// 표준 errors 패키지 위에 ErrorType 분류와 생성 위치 기록을 더합니다. 체인 탐색은 표준 errors.Is/As 와 함께 씁니다.
//
// # 기본 사용법
//
//	err := errors.New(errors.InvalidInput, "추적 번호 형식이 올바르지 않습니다")
//
//	if err != nil {
//	    return errors.Wrap(err, errors.System, "호스트 이름을 조회할 수 없습니다")
//	}
//
//	if errors.Is(err, errors.InvalidInput) {
//	    // 400 응답
//	}
//
// # ErrorType 선택 기준
//
//   - Internal: 버그로 간주되는 내부 로직 오류
//   - System: 호스트 정보, 파일, 네트워크 등 실행 환경의 장애
//   - InvalidInput: 설정값 또는 요청값 검증 실패
//   - NotFound: 요청한 대상이 존재하지 않음
//   - Unavailable: 초기화 실패 등으로 기능을 제공할 수 없는 상태
package errors

import (
	"errors"
	"fmt"
)

// AppError 분류(ErrorType)와 원인 에러, 생성 위치를 함께 담는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	pcs     []uintptr
}

// Type 에러의 타입을 반환합니다.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message 원인을 제외한 이 단계의 메시지를 반환합니다.
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Error() string {
	if e.cause == nil {
		return "[" + e.errType.String() + "] " + e.message
	}
	return "[" + e.errType.String() + "] " + e.message + ": " + e.cause.Error()
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		pcs:     callers(),
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

// Newf 포맷 문자열로 메시지를 만들어 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap err 를 원인으로 갖는 에러를 생성합니다. err 이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

// Wrapf 포맷 문자열을 사용하는 Wrap 입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

// Is 에러 체인의 어느 단계든 errType 으로 분류되어 있으면 true를 반환합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// UnderlyingType 에러 체인에서 가장 안쪽에 있는 AppError의 ErrorType을 반환합니다.
//
// 여러 겹으로 래핑된 에러의 본래 분류로 HTTP 응답 코드를 정할 때 사용합니다.
// 체인에 AppError가 없거나 err 이 nil이면 Unknown을 반환합니다.
//
//	err := Wrap(New(InvalidInput, "시퀀스 형식 오류"), Internal, "파싱 실패")
//	UnderlyingType(err) // InvalidInput
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
	}
	return t
}
