package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer Setup이 연 로그 파일들을 한 번에 닫습니다.
// hook을 먼저 닫아 닫힌 파일에 쓰는 일이 없게 하고, Close는 여러 번 호출해도 한 번만 동작합니다.
type closer struct {
	files []io.Closer
	hook  *hook

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	return closeAll(c.files)
}

// closeAll 모든 리소스의 Close를 시도하고 발생한 에러를 합쳐서 반환합니다.
func closeAll(files []io.Closer) error {
	var errs error
	for _, f := range files {
		if f == nil {
			continue
		}
		if s, ok := f.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := f.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
