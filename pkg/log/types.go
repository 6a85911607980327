package log

import "github.com/sirupsen/logrus"

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// Fields logrus.Fields의 별칭입니다.
type Fields = logrus.Fields

// Entry logrus.Entry의 별칭입니다.
type Entry = logrus.Entry

// Logger logrus.Logger의 별칭입니다.
type Logger = logrus.Logger

// Formatter logrus.Formatter의 별칭입니다.
type Formatter = logrus.Formatter
