package middleware

import (
	"bytes"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(level logrus.Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	l.SetLevel(level)

	return NewLogger(l.WithField("component", "api.echo")), &buf
}

func TestLoggerAdapter_Level_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		logrusLevel   logrus.Level
		expectedLevel log.Lvl
	}{
		{logrus.TraceLevel, log.DEBUG},
		{logrus.DebugLevel, log.DEBUG},
		{logrus.InfoLevel, log.INFO},
		{logrus.WarnLevel, log.WARN},
		{logrus.ErrorLevel, log.ERROR},
		{logrus.FatalLevel, log.ERROR},
		{logrus.PanicLevel, log.ERROR},
	}

	for _, tt := range tests {
		logger, _ := newTestLogger(tt.logrusLevel)
		assert.Equal(t, tt.expectedLevel, logger.Level(), "logrus level: %s", tt.logrusLevel)
	}
}

func TestLoggerAdapter_SetLevel_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		inputLevel    log.Lvl
		expectedLevel logrus.Level
	}{
		{log.DEBUG, logrus.DebugLevel},
		{log.INFO, logrus.InfoLevel},
		{log.WARN, logrus.WarnLevel},
		{log.ERROR, logrus.ErrorLevel},
		{log.OFF, logrus.TraceLevel}, // 무시되어 기존 레벨 유지
	}

	for _, tt := range tests {
		logger, _ := newTestLogger(logrus.TraceLevel)
		logger.SetLevel(tt.inputLevel)
		assert.Equal(t, tt.expectedLevel, logger.Entry.Logger.GetLevel())
	}
}

func TestLoggerAdapter_Methods_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		action    func(Logger)
		expectLog []string
	}{
		{"Print", func(l Logger) { l.Print("test print") }, []string{"test print", "level=info", "component=api.echo"}},
		{"Printf", func(l Logger) { l.Printf("hello %d", 42) }, []string{"hello 42"}},
		{"Debug", func(l Logger) { l.Debug("test debug") }, []string{"test debug", "level=debug"}},
		{"Infof", func(l Logger) { l.Infof("v=%s", "x") }, []string{"v=x", "level=info"}},
		{"Infoj", func(l Logger) { l.Infoj(log.JSON{"key": "value"}) }, []string{"key=value"}},
		{"Warn", func(l Logger) { l.Warn("test warn") }, []string{"test warn", "level=warning"}},
		{"Errorf", func(l Logger) { l.Errorf("err %s", "x") }, []string{"err x", "level=error"}},
		{"Errorj", func(l Logger) { l.Errorj(log.JSON{"code": 1}) }, []string{"code=1", "level=error", "component=api.echo"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := newTestLogger(logrus.TraceLevel)
			tt.action(logger)

			for _, s := range tt.expectLog {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestLoggerAdapter_Panic(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger(logrus.TraceLevel)

	assert.Panics(t, func() { logger.Panic("fatal problem") })
	assert.Contains(t, buf.String(), "fatal problem")

	assert.Panics(t, func() { logger.Panicj(log.JSON{"reason": "boom"}) })
	assert.Contains(t, buf.String(), "reason=boom")
}

func TestLoggerAdapter_OutputAndPrefix(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger(logrus.InfoLevel)
	assert.Same(t, buf, logger.Output())

	var other bytes.Buffer
	logger.SetOutput(&other)
	assert.Same(t, &other, logger.Output())

	logger.SetPrefix("ignored")
	logger.SetHeader("ignored")
	assert.Empty(t, logger.Prefix())
}
