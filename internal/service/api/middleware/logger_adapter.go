package middleware

import (
	"io"

	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/labstack/gommon/log"
)

// Logger Echo 내부 로그를 컴포넌트 필드가 붙은 logrus Entry로 보내는 echo.Logger 구현체입니다.
//
// Print, Debug, Infof 등 포맷 계열 메서드는 임베드된 Entry의 메서드가 그대로 사용됩니다.
type Logger struct {
	*applog.Entry
}

// NewLogger entry를 감싼 Logger를 생성합니다.
func NewLogger(entry *applog.Entry) Logger {
	return Logger{Entry: entry}
}

func (l Logger) Output() io.Writer { return l.Entry.Logger.Out }

func (l Logger) SetOutput(w io.Writer) { l.Entry.Logger.SetOutput(w) }

// Prefix, SetPrefix, SetHeader 로그 형식은 logrus Formatter가 결정하므로 무시합니다.
func (l Logger) Prefix() string { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}

// Level Trace는 DEBUG로, Fatal/Panic은 ERROR로 대응시킵니다.
func (l Logger) Level() log.Lvl {
	switch lvl := l.Entry.Logger.GetLevel(); {
	case lvl >= applog.DebugLevel:
		return log.DEBUG
	case lvl == applog.InfoLevel:
		return log.INFO
	case lvl == applog.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}

// SetLevel log.OFF 등 대응하는 logrus 레벨이 없는 값은 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	levels := map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}
	if level, ok := levels[lvl]; ok {
		l.Entry.Logger.SetLevel(level)
	}
}

func (l Logger) with(j log.JSON) *applog.Entry {
	return l.Entry.WithFields(applog.Fields(j))
}

func (l Logger) Printj(j log.JSON) { l.with(j).Print() }
func (l Logger) Debugj(j log.JSON) { l.with(j).Debug() }
func (l Logger) Infoj(j log.JSON) { l.with(j).Info() }
func (l Logger) Warnj(j log.JSON) { l.with(j).Warn() }
func (l Logger) Errorj(j log.JSON) { l.with(j).Error() }
func (l Logger) Fatalj(j log.JSON) { l.with(j).Fatal() }
func (l Logger) Panicj(j log.JSON) { l.with(j).Panic() }
