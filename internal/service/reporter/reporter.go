// Package reporter 추적 번호 발급 통계를 cron 일정에 맞춰 주기적으로 로그에 기록합니다.
package reporter

import (
	"context"
	"sync"
	"time"

	"github.com/kvishnublr/GetroRepo/internal/config"
	"github.com/kvishnublr/GetroRepo/internal/trackingnum"
	"github.com/kvishnublr/GetroRepo/pkg/cronx"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
	"github.com/kvishnublr/GetroRepo/pkg/strutil"
	"github.com/robfig/cron/v3"
)

const component = "reporter.service"

// StatsSource 발급 통계를 제공합니다. *trackingnum.Generator 가 구현합니다.
type StatsSource interface {
	Stats() trackingnum.Stats
}

// Reporter 발급 통계 리포트 서비스
type Reporter struct {
	cfg    config.ReporterConfig
	source StatsSource

	cron *cron.Cron

	// 직전 리포트 시점의 통계. 구간별 발급량 계산에 사용합니다.
	// Stop 이 mu 를 잡은 채 실행 중인 리포트를 기다리므로 별도 잠금으로 보호합니다.
	last   trackingnum.Stats
	lastMu sync.Mutex

	now func() time.Time

	running bool
	mu      sync.Mutex
}

// NewService 새 Reporter를 생성합니다.
func NewService(cfg config.ReporterConfig, source StatsSource) *Reporter {
	return &Reporter{
		cfg:    cfg,
		source: source,
		now:    time.Now,
	}
}

// Start 리포트 일정을 등록하고 cron 엔진을 시작합니다. 비활성화된 경우 아무것도 하지 않습니다.
func (r *Reporter) Start(ctx context.Context, wg *sync.WaitGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.source == nil {
		wg.Done()
		return ErrStatsSourceNotInitialized
	}

	if r.running {
		wg.Done()
		applog.WithComponent(component).Warn("Reporter 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if !r.cfg.Enabled {
		wg.Done()
		applog.WithComponent(component).Info("Reporter 서비스가 비활성화되어 있어 시작하지 않습니다")
		return nil
	}

	cronLogger := cron.VerbosePrintfLogger(applog.StandardLogger())
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cronLogger),
		cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		),
	)

	if _, err := c.AddFunc(r.cfg.TimeSpec, r.report); err != nil {
		wg.Done()
		return newErrInvalidCronSpec(r.cfg.TimeSpec, err)
	}

	r.lastMu.Lock()
	r.last = r.source.Stats()
	r.lastMu.Unlock()

	r.cron = c
	r.cron.Start()
	r.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": r.cfg.TimeSpec,
	}).Info("Reporter 서비스 시작 완료")

	go func() {
		defer wg.Done()

		<-ctx.Done()

		r.Stop()
	}()

	return nil
}

// Stop cron 엔진을 멈추고 실행 중인 리포트가 끝날 때까지 기다립니다.
func (r *Reporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}

	<-r.cron.Stop().Done()

	r.cron = nil
	r.running = false

	applog.WithComponent(component).Info("Reporter 서비스 종료 완료")
}

// report 현재 통계와 직전 리포트 이후의 발급량을 기록합니다.
func (r *Reporter) report() {
	stats := r.source.Stats()

	r.lastMu.Lock()
	prev := r.last
	r.last = stats
	r.lastMu.Unlock()

	issuedSinceLast := stats.Issued - prev.Issued

	applog.WithComponentAndFields(component, applog.Fields{
		"node":              stats.Node,
		"issued":            stats.Issued,
		"issued_since_last": issuedSinceLast,
		"wraparounds":       stats.Wraparounds,
		"uptime":            r.now().Sub(stats.StartedAt).Round(time.Second).String(),
	}).Info("추적 번호 발급 현황: 누적 " + strutil.FormatCommas(stats.Issued) + "건, 직전 리포트 이후 " + strutil.FormatCommas(issuedSinceLast) + "건")

	if stats.Wraparounds > prev.Wraparounds {
		applog.WithComponentAndFields(component, applog.Fields{
			"node":        stats.Node,
			"wraparounds": stats.Wraparounds,
		}).Warn("직전 리포트 이후 시퀀스가 순환되었습니다. 같은 밀리초에 순환이 겹치면 중복 번호가 발생할 수 있습니다")
	}
}
