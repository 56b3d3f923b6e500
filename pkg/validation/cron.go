package validation

import (
	"fmt"

	"github.com/kvishnublr/GetroRepo/pkg/cronx"
)

// ValidateCronExpression 스케줄러가 사용하는 파서로 cron 표현식을 해석할 수 있는지 확인합니다.
func ValidateCronExpression(spec string) error {
	if _, err := cronx.StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
