package system

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/kvishnublr/GetroRepo/internal/pkg/version"
	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	"github.com/kvishnublr/GetroRepo/internal/trackingnum"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type fakeStats struct {
	stats trackingnum.Stats
}

func (f fakeStats) Stats() trackingnum.Stats { return f.stats }

func serve(t *testing.T, handler echo.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	require.NoError(t, handler(c))

	return rec
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(fakeStats{}, version.Info{Version: "1.0.0"})
		assert.Equal(t, "1.0.0", h.buildInfo.Version)
		assert.WithinDuration(t, time.Now(), h.serverStartTime, time.Second)
	})

	t.Run("실패: StatsProvider가 nil이면 panic", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, constants.PanicMsgGeneratorRequired, func() {
			NewHandler(nil, version.Info{})
		})
	})
}

func TestHandler_HealthCheckHandler(t *testing.T) {
	t.Parallel()

	t.Run("정상 생성기", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(fakeStats{stats: trackingnum.Stats{
			Node:        "web-01-ab12cd34",
			Issued:      42,
			Wraparounds: 1,
		}}, version.Info{})
		h.serverStartTime = time.Now().Add(-90 * time.Second)

		rec := serve(t, h.HealthCheckHandler, "/health")
		body := rec.Body.String()

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constants.HealthStatusHealthy, gjson.Get(body, "status").String())
		assert.Equal(t, "web-01-ab12cd34", gjson.Get(body, "node").String())
		assert.GreaterOrEqual(t, gjson.Get(body, "uptime").Int(), int64(90))

		dep := gjson.Get(body, "dependencies."+constants.DependencyGenerator)
		assert.Equal(t, constants.HealthStatusHealthy, dep.Get("status").String())
		assert.Equal(t, int64(42), dep.Get("issued").Int())
		assert.Equal(t, int64(1), dep.Get("wraparounds").Int())
	})
}

func TestHandler_VersionHandler(t *testing.T) {
	t.Parallel()

	t.Run("빌드 정보 그대로 반환", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(fakeStats{}, version.Info{
			Version:     "v1.2.3",
			Commit:      "abc1234",
			BuildDate:   "2025-01-01",
			BuildNumber: "77",
			GoVersion:   "go1.24.0",
		})

		rec := serve(t, h.VersionHandler, "/version")
		body := rec.Body.String()

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "v1.2.3", gjson.Get(body, "version").String())
		assert.Equal(t, "abc1234", gjson.Get(body, "commit").String())
		assert.Equal(t, "2025-01-01", gjson.Get(body, "build_date").String())
		assert.Equal(t, "77", gjson.Get(body, "build_number").String())
		assert.Equal(t, "go1.24.0", gjson.Get(body, "go_version").String())
	})

	t.Run("Go 버전이 비어 있으면 런타임 값 사용", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(fakeStats{}, version.Info{Version: "dev"})

		rec := serve(t, h.VersionHandler, "/version")
		assert.Equal(t, runtime.Version(), gjson.Get(rec.Body.String(), "go_version").String())
	})
}
