package trackingnum

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
)

// sequenceWidth 시퀀스를 0으로 채워 출력하는 고정 자릿수
const sequenceWidth = 6

// Option Generator 생성 옵션
type Option func(*Generator)

// WithClock 현재 시각을 읽는 함수를 교체합니다.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithSequence 사용할 시퀀스를 지정합니다.
func WithSequence(seq *Sequence) Option {
	return func(g *Generator) {
		if seq != nil {
			g.seq = seq
		}
	}
}

// Generator 노드 식별자, 현재 시각(밀리초), 시퀀스를 결합해 추적 번호를 발급합니다.
// 여러 고루틴에서 동시에 사용해도 안전하며 발급 경로에 잠금이 없습니다.
type Generator struct {
	node NodeIdentity
	now  func() time.Time
	seq  *Sequence

	issued    atomic.Uint64
	startedAt time.Time
}

// NewGenerator node 를 사용하는 Generator를 생성합니다.
func NewGenerator(node NodeIdentity, opts ...Option) (*Generator, error) {
	if err := node.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		node: node,
		now:  time.Now,
		seq:  &Sequence{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.startedAt = g.now()

	applog.WithComponentAndFields(component, applog.Fields{
		"node": node,
	}).Info("추적 번호 생성기 초기화 완료")

	return g, nil
}

// Node 생성기가 사용하는 노드 식별자를 반환합니다.
func (g *Generator) Node() NodeIdentity {
	return g.node
}

// Next 새 추적 번호를 발급합니다.
func (g *Generator) Next() string {
	ms := g.now().UnixMilli()

	seq, wrapped := g.seq.next()
	if wrapped {
		applog.WithComponentAndFields(component, applog.Fields{
			"node":        g.node,
			"wraparounds": g.seq.Wraparounds(),
		}).Debug("시퀀스가 0으로 순환되었습니다")
	}

	g.issued.Add(1)

	return Compose(g.node, ms, seq)
}

// NextN n개의 추적 번호를 순서대로 발급합니다. n이 0 이하이면 빈 슬라이스를 반환합니다.
func (g *Generator) NextN(n int) []string {
	if n <= 0 {
		return []string{}
	}

	ids := make([]string, n)
	for i := range ids {
		ids[i] = g.Next()
	}
	return ids
}

// Stats 생성기 누적 통계
type Stats struct {
	Node        NodeIdentity `json:"node"`
	Issued      uint64       `json:"issued"`
	Wraparounds uint64       `json:"wraparounds"`
	StartedAt   time.Time    `json:"started_at"`
}

// Stats 현재까지의 발급 통계를 반환합니다.
func (g *Generator) Stats() Stats {
	return Stats{
		Node:        g.node,
		Issued:      g.issued.Load(),
		Wraparounds: g.seq.Wraparounds(),
		StartedAt:   g.startedAt,
	}
}

// Compose 세 구성 요소로 추적 번호 문자열을 만듭니다. 시퀀스는 6자리로 0을 채웁니다.
//
//	Compose("host-ab12cd34", 1700000000000, 7) // "host-ab12cd34-1700000000000-000007"
func Compose(node NodeIdentity, ms int64, seq int64) string {
	b := make([]byte, 0, len(node)+1+13+1+sequenceWidth)
	b = append(b, node...)
	b = append(b, '-')
	b = strconv.AppendInt(b, ms, 10)
	b = append(b, '-')
	b = appendZeroPadded(b, seq, sequenceWidth)
	return string(b)
}

// appendZeroPadded num 을 width 자리에 맞춰 앞을 0으로 채워 추가합니다.
// num 의 자릿수가 width 보다 길면 잘라내지 않고 그대로 추가합니다.
func appendZeroPadded(dst []byte, num int64, width int) []byte {
	var tmp [20]byte
	digits := strconv.AppendInt(tmp[:0], num, 10)
	for i := len(digits); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, digits...)
}

// newDefault resolve 로 얻은 노드 식별자로 Generator를 한 번만 만드는 함수를 반환합니다.
// 실패한 결과도 캐시되어 이후 호출은 같은 에러를 받습니다.
func newDefault(resolve func() (NodeIdentity, error)) func() (*Generator, error) {
	once := sync.OnceValues(func() (*Generator, error) {
		node, err := resolve()
		if err != nil {
			return nil, err
		}
		return NewGenerator(node)
	})

	return func() (*Generator, error) {
		g, err := once()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.Unavailable, "추적 번호 생성기를 초기화할 수 없습니다")
		}
		return g, nil
	}
}

var defaultGenerator = newDefault(DefaultNodeIdentity)

// Default 프로세스 기본 노드 식별자를 사용하는 공유 Generator를 반환합니다.
//
// 프로세스 안의 모든 발급 경로(HTTP API, 리포터, CreateTrackingNumber)는 이 Generator 하나의 시퀀스를 공유해야 합니다.
// 같은 노드 식별자로 NewGenerator를 따로 호출하면 시퀀스가 둘로 나뉘어 같은 번호가 발급됩니다.
func Default() (*Generator, error) {
	return defaultGenerator()
}

// CreateTrackingNumber 공유 Generator로 추적 번호 하나를 발급합니다.
//
// 노드 식별자 생성에 실패한 프로세스에서는 매 호출마다 같은 원인의 에러를 반환합니다.
func CreateTrackingNumber() (string, error) {
	return createWith(defaultGenerator)
}

func createWith(get func() (*Generator, error)) (string, error) {
	g, err := get()
	if err != nil {
		return "", err
	}
	return g.Next(), nil
}
