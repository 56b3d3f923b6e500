package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// sink 로그를 받는 출력 채널 하나입니다.
type sink struct {
	name   string
	writer io.Writer

	// fatal true이면 쓰기 실패를 호출자에게 에러로 전달합니다.
	// console 처럼 실패해도 무방한 채널은 false로 두고 stderr 경고만 남깁니다.
	fatal bool
}

// hook 레벨에 따라 로그 엔트리를 main, critical, verbose, console 채널로 나누어 기록합니다.
//
//   - console: 모든 레벨
//   - critical: ERROR 이상
//   - verbose: DEBUG 이하 (main 에는 기록하지 않음)
//   - main: INFO 이상
type hook struct {
	main     *sink
	critical *sink
	verbose  *sink
	console  *sink

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func newHook(formatter Formatter) *hook {
	return &hook{formatter: formatter}
}

func (h *hook) Levels() []Level {
	return AllLevels
}

// route 엔트리 레벨에 해당하는 출력 채널 목록을 기록 순서대로 반환합니다.
func (h *hook) route(level Level) []*sink {
	sinks := make([]*sink, 0, 3)
	if h.console != nil {
		sinks = append(sinks, h.console)
	}
	if level <= ErrorLevel && h.critical != nil {
		sinks = append(sinks, h.critical)
	}
	if level >= DebugLevel {
		if h.verbose != nil {
			sinks = append(sinks, h.verbose)
		}
		return sinks
	}
	if h.main != nil {
		sinks = append(sinks, h.main)
	}
	return sinks
}

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	sinks := h.route(entry.Level)
	if len(sinks) == 0 {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 한 채널의 실패가 나머지 채널 기록을 막지 않도록 첫 번째 에러만 보관하고 계속 진행합니다.
	var firstErr error
	for _, s := range sinks {
		if _, err := s.writer.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM] %s 로그 쓰기 실패: %v\n", s.name, err)
			if s.fatal && firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// Close 진행 중인 Fire 호출이 끝날 때까지 기다린 뒤 이후 기록을 모두 무시하도록 전환합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
