package trackingnum

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_ZeroValueStartsAtZero(t *testing.T) {
	var s Sequence

	assert.Equal(t, int64(0), s.Next())
	assert.Equal(t, int64(1), s.Next())
	assert.Equal(t, int64(2), s.Next())
}

func TestNewSequence_Start(t *testing.T) {
	tests := []struct {
		name  string
		start int64
		want  int64
	}{
		{"범위 안", 42, 42},
		{"상한 직전", MaxSequence - 1, MaxSequence - 1},
		{"음수는 0", -5, 0},
		{"상한 이상은 0", MaxSequence, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSequence(tt.start).Next())
		})
	}
}

func TestSequence_Wraparound(t *testing.T) {
	s := NewSequence(MaxSequence - 2)

	assert.Equal(t, int64(999998), s.Next())
	assert.Equal(t, int64(999999), s.Next())
	assert.Equal(t, int64(0), s.Next())
	assert.Equal(t, int64(1), s.Next())
	assert.Equal(t, uint64(1), s.Wraparounds())
}

func TestSequence_FullCycle(t *testing.T) {
	var s Sequence

	for want := int64(0); want < MaxSequence; want++ {
		if got := s.Next(); got != want {
			require.Equal(t, want, got)
		}
	}
	assert.Equal(t, int64(0), s.Next())
	assert.Equal(t, uint64(1), s.Wraparounds())
}

func TestSequence_Concurrency(t *testing.T) {
	const (
		goroutines = 50
		perWorker  = 1000
	)

	var s Sequence
	var seen sync.Map
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				v := s.Next()
				if v < 0 || v >= MaxSequence {
					t.Errorf("범위를 벗어난 값: %d", v)
				}
				if _, dup := seen.LoadOrStore(v, struct{}{}); dup {
					t.Errorf("중복된 값: %d", v)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(goroutines*perWorker), s.Next())
}

// 여러 고루틴이 동시에 상한을 넘기더라도 리셋은 한 번만 일어나야 합니다.
func TestSequence_ConcurrentWraparound(t *testing.T) {
	const (
		goroutines = 50
		perWorker  = 10
	)

	s := NewSequence(MaxSequence - 100)

	var mu sync.Mutex
	seen := make(map[int64]int)
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				v := s.Next()
				mu.Lock()
				seen[v]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, goroutines*perWorker)
	for v, n := range seen {
		assert.Equal(t, 1, n, "값 %d 이(가) 중복 발급되었습니다", v)
	}
	assert.Equal(t, uint64(1), s.Wraparounds())

	// 상한 직전 100개와 순환 후 0..399 가 정확히 발급되어야 합니다.
	for v := int64(0); v < int64(goroutines*perWorker-100); v++ {
		assert.Contains(t, seen, v)
	}
}
