// Package system 서버 상태 확인과 빌드 정보 조회 같은 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/kvishnublr/GetroRepo/internal/pkg/version"
	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	"github.com/kvishnublr/GetroRepo/internal/service/api/model/system"
	"github.com/kvishnublr/GetroRepo/internal/trackingnum"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
	"github.com/labstack/echo/v4"
)

// StatsProvider 추적 번호 생성기의 발급 통계를 제공합니다.
type StatsProvider interface {
	Stats() trackingnum.Stats
}

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	stats StatsProvider

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler를 생성합니다. stats 가 nil이면 panic 합니다.
func NewHandler(stats StatsProvider, buildInfo version.Info) *Handler {
	if stats == nil {
		panic(constants.PanicMsgGeneratorRequired)
	}

	return &Handler{
		stats:           stats,
		buildInfo:       buildInfo,
		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 상태 확인
// @Description 서버 가동 시간, 노드 식별자, 추적 번호 생성기의 상태를 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "서버 상태"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	stats := h.stats.Stats()

	dep := system.DependencyStatus{
		Status:      constants.HealthStatusHealthy,
		Message:     constants.MsgDepStatusHealthy,
		Issued:      stats.Issued,
		Wraparounds: stats.Wraparounds,
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status: dep.Status,
		Uptime: int64(time.Since(h.serverStartTime).Seconds()),
		Node:   stats.Node.String(),
		Dependencies: map[string]system.DependencyStatus{
			constants.DependencyGenerator: dep,
		},
	})
}

// VersionHandler godoc
// @Summary 빌드 정보 조회
// @Description 서버 바이너리의 버전, 커밋, 빌드 일시, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "빌드 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	goVersion := h.buildInfo.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   goVersion,
	})
}
