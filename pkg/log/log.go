// Package log logrus를 감싼 애플리케이션 공용 로깅 패키지입니다.
//
// 모든 로그는 component 필드를 포함하도록 WithComponent 또는 WithComponentAndFields로 남깁니다.
//
//	applog.WithComponentAndFields("trackingnum", applog.Fields{
//	    "node": node,
//	}).Info("노드 식별자 생성 완료")
package log

import (
	"maps"

	"github.com/sirupsen/logrus"
)

// componentKey 로그 엔트리의 출처를 나타내는 필드 이름
const componentKey = "component"

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetLevel 전역 로그 레벨을 설정합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// SetDebugMode debug가 true이면 Trace 레벨, 아니면 Info 레벨로 전환합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// WithFields 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// fields 에 component 키가 있더라도 인자로 받은 component가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	maps.Copy(merged, fields)
	merged[componentKey] = component
	return logrus.WithFields(merged)
}

// MaskSensitiveData 로그에 남길 민감한 값을 앞뒤 일부만 남기고 가립니다.
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
