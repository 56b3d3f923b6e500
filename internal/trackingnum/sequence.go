package trackingnum

import "sync/atomic"

// MaxSequence 시퀀스의 상한(미포함)입니다. 발급되는 값은 항상 [0, MaxSequence) 범위입니다.
const MaxSequence int64 = 1_000_000

// Sequence 여러 고루틴이 동시에 사용할 수 있는 순환 카운터입니다. 제로값은 0부터 시작합니다.
//
// value 에는 다음에 발급할 값이 저장됩니다. MaxSequence 에 도달한 값을 읽은 고루틴만
// CAS 로 1을 기록하고 0을 가져가므로, 한 바퀴에 리셋은 정확히 한 번 일어나고
// 한 바퀴 안에서 건너뛰거나 중복되는 값이 없습니다.
type Sequence struct {
	value atomic.Int64
	wraps atomic.Uint64
}

// NewSequence start 부터 발급을 시작하는 시퀀스를 생성합니다.
// start 가 범위를 벗어나면 0부터 시작합니다.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	if start > 0 && start < MaxSequence {
		s.value.Store(start)
	}
	return s
}

// Next 다음 시퀀스 값을 반환합니다.
func (s *Sequence) Next() int64 {
	v, _ := s.next()
	return v
}

// next 다음 값과 함께 이번 호출에서 순환이 일어났는지를 반환합니다.
func (s *Sequence) next() (int64, bool) {
	for {
		cur := s.value.Load()

		if cur >= MaxSequence {
			if s.value.CompareAndSwap(cur, 1) {
				s.wraps.Add(1)
				return 0, true
			}
			continue
		}

		if s.value.CompareAndSwap(cur, cur+1) {
			return cur, false
		}
	}
}

// Wraparounds 시퀀스가 0으로 되돌아간 횟수를 반환합니다.
func (s *Sequence) Wraparounds() uint64 {
	return s.wraps.Load()
}
