package log

import (
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// silentFormatter 아무것도 출력하지 않는 포맷터입니다.
// logrus는 io.Discard로 출력하더라도 포맷팅을 수행하므로, 실제 포맷팅은 hook에 맡기고 기본 경로에서는 이것을 사용합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}

// newTextFormatter 파일과 콘솔 출력에 공통으로 사용하는 TextFormatter를 생성합니다.
func newTextFormatter(prefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if prefix != "" {
				if cut, found := strings.CutPrefix(function, prefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}
