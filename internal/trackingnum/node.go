package trackingnum

import (
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
	applog "github.com/kvishnublr/GetroRepo/pkg/log"
)

// tokenLength 노드 식별자에 사용하는 UUID 문자열의 앞부분 길이
const tokenLength = 8

// 테스트에서 교체할 수 있도록 변수로 둡니다.
var (
	hostname = os.Hostname
	newUUID  = uuid.NewRandom
)

// NodeIdentity 프로세스 하나를 구분하는 "<hostname>-<8자리 토큰>" 형식의 문자열입니다.
type NodeIdentity string

func (n NodeIdentity) String() string {
	return string(n)
}

// IsEmpty 식별자가 비어 있는지 확인합니다.
func (n NodeIdentity) IsEmpty() bool {
	return len(n) == 0
}

// Validate 호스트 이름 부분이 비어 있지 않고 마지막 세그먼트가 8자리 16진수 토큰인지 검사합니다.
func (n NodeIdentity) Validate() error {
	s := string(n)

	idx := strings.LastIndexByte(s, '-')
	if idx <= 0 {
		return apperrors.Newf(apperrors.InvalidInput, "노드 식별자 형식이 올바르지 않습니다: %q", s)
	}

	token := s[idx+1:]
	if len(token) != tokenLength || !isHex(token) {
		return apperrors.Newf(apperrors.InvalidInput, "노드 토큰은 %d자리 16진수여야 합니다: %q", tokenLength, token)
	}

	return nil
}

// NewNodeIdentity 호스트 이름과 무작위 UUID(v4) 앞 8자리를 결합해 새 노드 식별자를 만듭니다.
//
// 호스트 이름을 얻지 못하면 대체값 없이 System 에러를 반환합니다.
func NewNodeIdentity() (NodeIdentity, error) {
	host, err := hostname()
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.System, "호스트 이름을 조회할 수 없습니다")
	}
	if host == "" {
		return "", apperrors.New(apperrors.System, "호스트 이름이 비어 있습니다")
	}

	id, err := newUUID()
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.System, "노드 토큰용 UUID를 생성할 수 없습니다")
	}

	node := NodeIdentity(host + "-" + id.String()[:tokenLength])

	applog.WithComponentAndFields(component, applog.Fields{
		"node": node,
	}).Debug("노드 식별자 생성")

	return node, nil
}

var defaultNode = sync.OnceValues(func() (NodeIdentity, error) {
	return NewNodeIdentity()
})

// DefaultNodeIdentity 프로세스 전체에서 공유하는 노드 식별자를 반환합니다.
//
// 최초 호출 시 한 번만 생성되며 실패한 결과도 그대로 캐시되어 이후 모든 호출에 같은 에러가 반환됩니다.
func DefaultNodeIdentity() (NodeIdentity, error) {
	return defaultNode()
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
