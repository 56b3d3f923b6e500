// Package strutil 설정 로딩과 로그 출력에 쓰이는 문자열 유틸리티를 제공합니다.
package strutil

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// ToSnakeCase CamelCase 문자열을 snake_case 로 변환합니다.
// 예: "MaxBatchSize" -> "max_batch_size"
func ToSnakeCase(s string) string {
	return strcase.ToSnake(s)
}

// Integer 모든 정수 타입
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// FormatCommas 정수를 천 단위 구분 기호가 포함된 문자열로 변환합니다.
// 예: 1234567 -> "1,234,567"
func FormatCommas[T Integer](num T) string {
	var digits string
	if num < 0 {
		digits = strconv.FormatInt(int64(num), 10)
	} else {
		digits = strconv.FormatUint(uint64(num), 10)
	}

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.Grow(len(sign) + len(digits) + (len(digits)-1)/3)
	b.WriteString(sign)

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// SplitAndTrim sep 로 분리한 뒤 각 항목의 공백을 제거하고 빈 항목은 버립니다. 결과가 없으면 nil을 반환합니다.
// 예: "a, , b,c" -> ["a", "b", "c"]
func SplitAndTrim(s, sep string) []string {
	var result []string
	for _, token := range strings.Split(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}
