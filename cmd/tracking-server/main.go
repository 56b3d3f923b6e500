package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kvishnublr/GetroRepo/internal/config"
	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
	"github.com/kvishnublr/GetroRepo/internal/pkg/version"
	"github.com/kvishnublr/GetroRepo/internal/service"
	"github.com/kvishnublr/GetroRepo/internal/service/api"
	"github.com/kvishnublr/GetroRepo/internal/service/reporter"
	"github.com/kvishnublr/GetroRepo/internal/trackingnum"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
)

// @title Tracking Number Server API
// @version 1.0
// @description 분산 인스턴스에서 충돌 가능성이 매우 낮은 추적 번호를 발급하고 분해하는 API 서버입니다.
// @description
// @description ## 추적 번호 형식
// @description `<호스트 이름>-<UUID 앞 8자>-<epoch 밀리초>-<6자리 시퀀스>`
// @description
// @description 시퀀스는 프로세스 안에서 0부터 999999까지 증가한 뒤 0으로 되돌아갑니다.

// @license.name MIT

// @BasePath /

const component = "main"

const banner = `
  _____               _    _                ____
 |_   _| __ __ _  ___| | _(_)_ __   __ _   / ___|  ___ _ ____   _____ _ __
   | || '__/ _' |/ __| |/ / | '_ \ / _' |  \___ \ / _ \ '__\ \ / / _ \ '__|
   | || | | (_| | (__|   <| | | | | (_| |   ___) |  __/ |   \ V /  __/ |
   |_||_|  \__,_|\___|_|\_\_|_| |_|\__, |  |____/ \___|_|    \_/ \___|_|
                                   |___/                         %s
--------------------------------------------------------------------------------
`

// resolveGenerator 프로세스 공유 생성기를 구합니다. 테스트에서 교체합니다.
var resolveGenerator = trackingnum.Default

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err = run(ctx, appConfig, buildInfo)

	stop()

	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
			"stack": apperrors.Stack(err),
		}).Error("서버 실행 실패로 프로그램을 종료합니다")

		appLogCloser.Close()
		os.Exit(1)
	}

	appLogCloser.Close()
}

// run 공유 생성기를 준비하고 서비스를 시작한 뒤 ctx 가 취소될 때까지 기다립니다.
// 모든 서비스가 정리된 뒤에 반환합니다.
func run(ctx context.Context, appConfig *config.AppConfig, buildInfo version.Info) error {
	// 호스트 이름을 얻을 수 없으면 추적 번호를 만들 수 없으므로 서버를 띄우지 않습니다.
	generator, err := resolveGenerator()
	if err != nil {
		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"node": generator.Node().String(),
	}).Info("추적 번호 생성기 준비 완료")

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{
		reporter.NewService(appConfig.Reporter, generator),
		api.NewService(appConfig, generator, buildInfo),
	}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			// 이미 시작한 서비스도 종료합니다.
			cancel()
			serviceStopWG.Wait()

			return err
		}
	}

	applog.WithComponent(component).Info("서버 가동 완료")

	<-serviceStopCtx.Done()

	applog.WithComponent(component).Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()

	stats := generator.Stats()
	applog.WithComponentAndFields(component, applog.Fields{
		"issued":      stats.Issued,
		"wraparounds": stats.Wraparounds,
	}).Info("서버 종료")

	return nil
}
