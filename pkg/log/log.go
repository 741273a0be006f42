// Package log logrus 기반의 애플리케이션 전역 로깅 기능을 제공합니다.
//
// 로그는 lumberjack을 통해 크기 기준으로 로테이션되는 파일에 기록되며,
// 옵션에 따라 ERROR 이상의 로그를 별도 파일로 분리하거나 표준 출력으로 함께 내보낼 수 있습니다.
//
// 모든 로그는 component 필드를 포함하도록 WithComponent / WithComponentAndFields를 통해 기록합니다.
//
//	applog.WithComponentAndFields("scraper", applog.Fields{
//		"url":   url,
//		"count": len(titles),
//	}).Info("스크래핑이 완료되었습니다")
package log

import (
	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

// Fields logrus.Fields의 별칭입니다.
type Fields = logrus.Fields

// Entry logrus.Entry의 별칭입니다.
type Entry = logrus.Entry

// Logger logrus.Logger의 별칭입니다.
type Logger = logrus.Logger

// componentKey 모든 로그에 공통으로 추가되는 컴포넌트 필드 이름
const componentKey = "component"

// StandardLogger 전역 Logger를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithFields 지정된 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// 전달된 fields 맵은 수정하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[componentKey] = component

	return logrus.WithFields(merged)
}

// SetDebugMode 디버그 모드이면 Trace, 아니면 Info 레벨로 전역 로그 레벨을 변경합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
		return
	}
	logrus.SetLevel(InfoLevel)
}
