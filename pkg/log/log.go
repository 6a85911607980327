// Package log 애플리케이션 전역 로거(logrus)를 구성하고, 컴포넌트 단위의 구조화된 로깅 헬퍼를 제공합니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// fieldComponent 로그 발생 위치를 식별하는 필드 키
const fieldComponent = "component"

// SetDebugMode Debug 모드면 Trace, 아니면 Info 레벨로 설정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithFields 전역 로거에 필드를 추가한 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithComponent component 필드를 포함한 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(fieldComponent, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 Entry를 반환합니다.
// 전달된 fields 맵은 변경하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields[fieldComponent] = component
	return logrus.WithFields(newFields)
}
