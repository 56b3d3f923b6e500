package log

import (
	"fmt"
	"os"
)

// Options 로거 설정입니다.
type Options struct {
	Name  string // 로그 파일명에 사용될 애플리케이션 식별자
	Dir   string // 로그 파일 디렉토리 (빈 값: "logs")
	Level Level  // 최소 로그 레벨 (0: InfoLevel)

	MaxAge     int // 로테이션된 파일 보관 기간(일), 0이면 삭제하지 않음
	MaxSizeMB  int // 파일 하나의 최대 크기(MB), 0이면 defaultMaxSizeMB
	MaxBackups int // 로테이션된 파일의 최대 개수, 0이면 defaultMaxBackups

	EnableCriticalLog bool // ERROR 이상을 <name>.critical.log 로 추가 기록
	EnableVerboseLog  bool // DEBUG 이하를 <name>.verbose.log 로 분리 기록
	EnableConsoleLog  bool // 모든 레벨을 표준 출력에도 기록

	// ReportCaller 로그를 호출한 함수와 라인 번호를 함께 기록합니다.
	ReportCaller bool

	// CallerPathPrefix 호출자 함수 경로에서 잘라낼 접두어입니다.
	// 예: "github.com/kvishnublr" 이면 "github.com/kvishnublr/GetroRepo/pkg/log.Setup" 이 "...GetroRepo/pkg/log.Setup" 으로 출력됩니다.
	CallerPathPrefix string
}

// Validate Options 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}
