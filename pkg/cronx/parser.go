// Package cronx 애플리케이션 전체에서 공유하는 cron 표현식 파서를 제공합니다.
package cronx

import "github.com/robfig/cron/v3"

// StandardParser 초 필드를 포함한 6필드 표현식과 @every, @daily 같은 디스크립터를 해석하는 파서를 반환합니다.
//
// 설정 검증과 스케줄러 등록에 같은 파서를 사용해야 검증을 통과한 표현식이 등록 시점에 실패하지 않습니다.
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
