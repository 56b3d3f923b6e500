// Package service 서버를 구성하는 장기 실행 서비스들의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service main 에서 시작하고 종료 신호로 정리되는 서비스입니다.
//
// Start 는 호출 전에 wg.Add(1)이 되어 있다고 가정합니다. ctx 가 취소된 뒤 서비스가 완전히 정리되면
// wg.Done()을 호출합니다. 시작에 실패하거나 이미 실행 중이면 즉시 wg.Done()을 호출합니다.
type Service interface {
	Start(ctx context.Context, wg *sync.WaitGroup) error
}
