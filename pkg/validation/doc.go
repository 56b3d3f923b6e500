// Package validation 설정 파일과 API 입력값 검증에 쓰이는 공용 함수를 제공합니다.
//
// 모든 함수는 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환하며 상태를 갖지 않습니다.
package validation
