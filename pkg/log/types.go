package log

import (
	"github.com/sirupsen/logrus"
)

// 호출하는 패키지가 logrus 를 직접 import 하지 않도록 필요한 타입만 다시 내보냅니다.
type (
	Level         = logrus.Level
	Fields        = logrus.Fields
	Entry         = logrus.Entry
	Logger        = logrus.Logger
	Formatter     = logrus.Formatter
	TextFormatter = logrus.TextFormatter
)

// 로그 레벨
const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

// AllLevels 라우팅 훅이 구독하는 전체 레벨
var AllLevels = logrus.AllLevels
