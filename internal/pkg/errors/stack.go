package errors

import (
	"errors"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// maxStackDepth 에러 하나에 기록하는 최대 호출 위치 수
const maxStackDepth = 5

// callers newAppError 를 호출한 New/Wrap 계열 함수의 호출자부터 위치를 기록합니다.
func callers() []uintptr {
	var pcs [maxStackDepth]uintptr
	// runtime.Callers, callers, newAppError, New/Wrap 계열
	n := runtime.Callers(4, pcs[:])
	return append([]uintptr(nil), pcs[:n]...)
}

// Stack 에러가 만들어진 위치를 "파일:줄 패키지.함수" 형식으로 반환합니다.
//
// 체인에 AppError가 여러 개면 가장 안쪽 AppError의 위치를 사용합니다.
// err 이 nil이거나 체인에 AppError가 없으면 nil을 반환합니다.
func Stack(err error) []string {
	var pcs []uintptr
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			pcs = appErr.pcs
		}
	}
	if len(pcs) == 0 {
		return nil
	}

	lines := make([]string, 0, len(pcs))
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()

		fn := frame.Function
		if idx := strings.LastIndexByte(fn, '/'); idx >= 0 {
			fn = fn[idx+1:]
		}
		lines = append(lines, filepath.Base(frame.File)+":"+strconv.Itoa(frame.Line)+" "+fn)

		if !more {
			break
		}
	}
	return lines
}
