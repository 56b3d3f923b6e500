package middleware

import (
	"io"

	applog "github.com/kvishnublr/GetroRepo/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// echoToAppLevel gommon 로그 레벨을 애플리케이션 로그 레벨로 변환하는 표입니다.
var echoToAppLevel = map[log.Lvl]applog.Level{
	log.DEBUG: applog.DebugLevel,
	log.INFO:  applog.InfoLevel,
	log.WARN:  applog.WarnLevel,
	log.ERROR: applog.ErrorLevel,
}

// EchoLogger Echo 프레임워크 내부 로그(서버 시작 메시지, 라우터 경고 등)를
// 애플리케이션 로거로 보내는 echo.Logger 구현체입니다.
//
// 접두사와 헤더 템플릿은 애플리케이션 포맷터가 담당하므로 무시합니다.
type EchoLogger struct {
	logger *applog.Logger
}

var _ echo.Logger = EchoLogger{}

// NewEchoLogger l 로 로그를 보내는 EchoLogger를 생성합니다.
func NewEchoLogger(l *applog.Logger) EchoLogger {
	return EchoLogger{logger: l}
}

func (l EchoLogger) Output() io.Writer     { return l.logger.Out }
func (l EchoLogger) SetOutput(w io.Writer) { l.logger.SetOutput(w) }
func (l EchoLogger) Prefix() string        { return "" }
func (l EchoLogger) SetPrefix(string)      {}
func (l EchoLogger) SetHeader(string)      {}

// Level 현재 로그 레벨을 gommon 레벨로 반환합니다.
// Trace 는 가장 가까운 DEBUG 로, Fatal/Panic 은 일반 로그가 모두 꺼진 상태이므로 OFF 로 봅니다.
func (l EchoLogger) Level() log.Lvl {
	switch lvl := l.logger.GetLevel(); {
	case lvl >= applog.DebugLevel:
		return log.DEBUG
	case lvl == applog.InfoLevel:
		return log.INFO
	case lvl == applog.WarnLevel:
		return log.WARN
	case lvl == applog.ErrorLevel:
		return log.ERROR
	default:
		return log.OFF
	}
}

// SetLevel 알 수 없는 레벨(OFF 포함)은 무시합니다. 로그 레벨은 애플리케이션 설정이 결정합니다.
func (l EchoLogger) SetLevel(v log.Lvl) {
	if lvl, ok := echoToAppLevel[v]; ok {
		l.logger.SetLevel(lvl)
	}
}

func (l EchoLogger) logj(lvl applog.Level, j log.JSON) {
	l.logger.WithFields(applog.Fields(j)).Log(lvl)
}

func (l EchoLogger) Print(i ...any)                 { l.logger.Print(i...) }
func (l EchoLogger) Printf(format string, a ...any) { l.logger.Printf(format, a...) }
func (l EchoLogger) Printj(j log.JSON)              { l.logj(applog.InfoLevel, j) }

func (l EchoLogger) Debug(i ...any)                 { l.logger.Debug(i...) }
func (l EchoLogger) Debugf(format string, a ...any) { l.logger.Debugf(format, a...) }
func (l EchoLogger) Debugj(j log.JSON)              { l.logj(applog.DebugLevel, j) }

func (l EchoLogger) Info(i ...any)                 { l.logger.Info(i...) }
func (l EchoLogger) Infof(format string, a ...any) { l.logger.Infof(format, a...) }
func (l EchoLogger) Infoj(j log.JSON)              { l.logj(applog.InfoLevel, j) }

func (l EchoLogger) Warn(i ...any)                 { l.logger.Warn(i...) }
func (l EchoLogger) Warnf(format string, a ...any) { l.logger.Warnf(format, a...) }
func (l EchoLogger) Warnj(j log.JSON)              { l.logj(applog.WarnLevel, j) }

func (l EchoLogger) Error(i ...any)                 { l.logger.Error(i...) }
func (l EchoLogger) Errorf(format string, a ...any) { l.logger.Errorf(format, a...) }
func (l EchoLogger) Errorj(j log.JSON)              { l.logj(applog.ErrorLevel, j) }

func (l EchoLogger) Fatal(i ...any)                 { l.logger.Fatal(i...) }
func (l EchoLogger) Fatalf(format string, a ...any) { l.logger.Fatalf(format, a...) }
func (l EchoLogger) Fatalj(j log.JSON)              { l.logger.WithFields(applog.Fields(j)).Fatal() }

func (l EchoLogger) Panic(i ...any)                 { l.logger.Panic(i...) }
func (l EchoLogger) Panicf(format string, a ...any) { l.logger.Panicf(format, a...) }
func (l EchoLogger) Panicj(j log.JSON)              { l.logger.WithFields(applog.Fields(j)).Panic() }
