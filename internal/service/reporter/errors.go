package reporter

import (
	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
)

// ErrStatsSourceNotInitialized 통계를 제공할 생성기가 주입되지 않았을 때 반환합니다.
var ErrStatsSourceNotInitialized = apperrors.New(apperrors.Internal, "통계 제공자(StatsSource)가 초기화되지 않았습니다")

// newErrInvalidCronSpec cron 표현식을 스케줄러에 등록하지 못했을 때의 에러를 생성합니다.
func newErrInvalidCronSpec(timeSpec string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "리포트 스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec='%s')", timeSpec)
}
