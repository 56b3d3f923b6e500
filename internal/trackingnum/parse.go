package trackingnum

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
)

// TrackingNumber 추적 번호를 구성 요소로 분해한 결과입니다.
type TrackingNumber struct {
	Node      NodeIdentity `json:"node"`
	Timestamp int64        `json:"timestamp"`
	Sequence  int64        `json:"sequence"`
}

// String 구성 요소를 다시 추적 번호 문자열로 합칩니다.
func (t TrackingNumber) String() string {
	return Compose(t.Node, t.Timestamp, t.Sequence)
}

// Time 타임스탬프를 time.Time 으로 반환합니다.
func (t TrackingNumber) Time() time.Time {
	return time.UnixMilli(t.Timestamp)
}

// Parse 추적 번호 문자열을 분해합니다.
//
// 호스트 이름에 '-'가 포함될 수 있으므로 시퀀스와 타임스탬프를 오른쪽부터 떼어내고 나머지를 노드 식별자로 봅니다.
func Parse(s string) (TrackingNumber, error) {
	seqIdx := strings.LastIndexByte(s, '-')
	if seqIdx < 0 {
		return TrackingNumber{}, apperrors.Newf(apperrors.InvalidInput, "추적 번호 형식이 올바르지 않습니다: %q", s)
	}
	tsIdx := strings.LastIndexByte(s[:seqIdx], '-')
	if tsIdx < 0 {
		return TrackingNumber{}, apperrors.Newf(apperrors.InvalidInput, "추적 번호 형식이 올바르지 않습니다: %q", s)
	}

	node, ts, seq := s[:tsIdx], s[tsIdx+1:seqIdx], s[seqIdx+1:]

	if node == "" {
		return TrackingNumber{}, apperrors.Newf(apperrors.InvalidInput, "추적 번호에 노드 식별자가 없습니다: %q", s)
	}
	if ts == "" || !isDigits(ts) {
		return TrackingNumber{}, apperrors.Newf(apperrors.InvalidInput, "타임스탬프는 숫자여야 합니다: %q", ts)
	}
	if len(seq) != sequenceWidth || !isDigits(seq) {
		return TrackingNumber{}, apperrors.Newf(apperrors.InvalidInput, "시퀀스는 %d자리 숫자여야 합니다: %q", sequenceWidth, seq)
	}

	ms, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return TrackingNumber{}, apperrors.Wrapf(err, apperrors.InvalidInput, "타임스탬프 범위를 벗어났습니다: %q", ts)
	}
	n, _ := strconv.ParseInt(seq, 10, 64)

	return TrackingNumber{Node: NodeIdentity(node), Timestamp: ms, Sequence: n}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
