package reporter

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kvishnublr/GetroRepo/internal/config"
	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
	"github.com/kvishnublr/GetroRepo/internal/trackingnum"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockStatsSource struct {
	mock.Mock
}

func (m *mockStatsSource) Stats() trackingnum.Stats {
	return m.Called().Get(0).(trackingnum.Stats)
}

func enabledConfig(spec string) config.ReporterConfig {
	return config.ReporterConfig{Enabled: true, TimeSpec: spec}
}

func TestReporter_Start_Errors(t *testing.T) {
	t.Run("StatsSource 누락", func(t *testing.T) {
		r := NewService(enabledConfig("@hourly"), nil)

		var wg sync.WaitGroup
		wg.Add(1)
		err := r.Start(context.Background(), &wg)
		wg.Wait()

		assert.ErrorIs(t, err, ErrStatsSourceNotInitialized)
	})

	t.Run("잘못된 cron 표현식", func(t *testing.T) {
		src := &mockStatsSource{}
		r := NewService(enabledConfig("* * * * *"), src)

		var wg sync.WaitGroup
		wg.Add(1)
		err := r.Start(context.Background(), &wg)
		wg.Wait()

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		assert.False(t, r.running)
		src.AssertNotCalled(t, "Stats")
	})

	t.Run("비활성화", func(t *testing.T) {
		src := &mockStatsSource{}
		r := NewService(config.ReporterConfig{Enabled: false}, src)

		var wg sync.WaitGroup
		wg.Add(1)
		require.NoError(t, r.Start(context.Background(), &wg))
		wg.Wait()

		assert.False(t, r.running)
	})
}

func TestReporter_Lifecycle(t *testing.T) {
	src := &mockStatsSource{}
	src.On("Stats").Return(trackingnum.Stats{Node: "host-ab12cd34"})

	r := NewService(enabledConfig("@hourly"), src)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	require.NoError(t, r.Start(ctx, &wg))
	assert.True(t, r.running)

	// 중복 호출은 에러 없이 무시되고 wg 를 즉시 해제합니다.
	wg.Add(1)
	require.NoError(t, r.Start(ctx, &wg))

	cancel()
	wg.Wait()

	assert.False(t, r.running)
	assert.Nil(t, r.cron)
}

// countingSource 호출 횟수를 원자적으로 기록합니다.
type countingSource struct {
	calls atomic.Int32
}

func (s *countingSource) Stats() trackingnum.Stats {
	s.calls.Add(1)
	return trackingnum.Stats{Node: "host-ab12cd34"}
}

func TestReporter_FiresOnSchedule(t *testing.T) {
	src := &countingSource{}
	r := NewService(enabledConfig("* * * * * *"), src)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, r.Start(ctx, &wg))

	// Start 에서 1회, 이후 매초 리포트마다 호출됩니다.
	assert.Eventually(t, func() bool {
		return src.calls.Load() >= 2
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	wg.Wait()
}

func TestReporter_Report(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	startedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	src := &mockStatsSource{}
	src.On("Stats").Return(trackingnum.Stats{
		Node:        "host-ab12cd34",
		Issued:      1_500_000,
		Wraparounds: 1,
		StartedAt:   startedAt,
	}).Once()

	r := NewService(enabledConfig("@hourly"), src)
	r.now = func() time.Time { return startedAt.Add(90 * time.Second) }
	r.last = trackingnum.Stats{Issued: 1_000_000}

	r.report()

	require.Len(t, hook.Entries, 2)

	info := hook.Entries[0]
	assert.Equal(t, logrus.InfoLevel, info.Level)
	assert.Contains(t, info.Message, "누적 1,500,000건")
	assert.Contains(t, info.Message, "직전 리포트 이후 500,000건")
	assert.Equal(t, uint64(500_000), info.Data["issued_since_last"])
	assert.Equal(t, "1m30s", info.Data["uptime"])
	assert.Equal(t, component, info.Data["component"])

	assert.Equal(t, logrus.WarnLevel, hook.Entries[1].Level)
	assert.Equal(t, uint64(1_500_000), r.last.Issued)
	src.AssertExpectations(t)
}

func TestReporter_WithGenerator(t *testing.T) {
	g, err := trackingnum.NewGenerator("host-ab12cd34")
	require.NoError(t, err)

	r := NewService(enabledConfig("@hourly"), g)
	g.NextN(5)
	r.report()

	assert.Equal(t, uint64(5), r.last.Issued)
}
