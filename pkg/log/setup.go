package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileExt = "log"

	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	setupOnce sync.Once

	// 최초 Setup 결과. 이후 호출은 재시도 없이 같은 값을 돌려받습니다.
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 로거를 초기화합니다. 프로세스 생명주기 동안 한 번만 실행됩니다.
//
// 반환된 Closer는 main 함수에서 defer로 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

func setup(opts Options) (_ io.Closer, err error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}

	h := newHook(newTextFormatter(opts.CallerPathPrefix))

	var files []io.Closer
	defer func() {
		if err != nil {
			_ = closeAll(files)
		}
	}()

	open := func(suffix string) *lumberjack.Logger {
		f := newRotatingFile(dir, opts, suffix)
		files = append(files, f)
		return f
	}

	h.main = &sink{name: "main", writer: open(""), fatal: true}
	if opts.EnableCriticalLog {
		h.critical = &sink{name: "critical", writer: open("critical"), fatal: true}
	}
	if opts.EnableVerboseLog {
		h.verbose = &sink{name: "verbose", writer: open("verbose"), fatal: true}
	}
	if opts.EnableConsoleLog {
		h.console = &sink{name: "console", writer: os.Stdout}
	}

	// 실제 출력은 hook이 담당하므로 기본 출력과 포맷팅은 끕니다.
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)
	logrus.AddHook(h)

	c := &closer{files: files, hook: h}

	// Fatal 로그로 종료되기 직전에 버퍼를 비우고 파일을 닫습니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// newRotatingFile "<dir>/<name>[.<suffix>].log" 경로의 로테이션 파일을 생성합니다.
// 파일은 첫 쓰기 시점에 열립니다.
func newRotatingFile(dir string, opts Options, suffix string) *lumberjack.Logger {
	name := opts.Name
	if suffix != "" {
		name += "." + suffix
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name+"."+fileExt),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     opts.MaxAge,
		LocalTime:  true,
	}
}
