package middleware

import (
	"io"
	"testing"

	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// captureLogs 전역 로거의 출력을 테스트 훅으로 가로챕니다.
// 전역 상태를 변경하므로 이 헬퍼를 사용하는 테스트는 t.Parallel()을 사용할 수 없습니다.
func captureLogs(t *testing.T) *test.Hook {
	t.Helper()

	logger := applog.StandardLogger()
	origHooks := logger.ReplaceHooks(make(logrus.LevelHooks))
	origOut := logger.Out
	origLevel := logger.GetLevel()

	logger.SetOutput(io.Discard)
	logger.SetLevel(applog.TraceLevel)
	hook := test.NewLocal(logger)

	t.Cleanup(func() {
		logger.ReplaceHooks(origHooks)
		logger.SetOutput(origOut)
		logger.SetLevel(origLevel)
	})

	return hook
}

// findEntry 지정된 메시지를 가진 첫 번째 로그 항목을 반환합니다.
func findEntry(hook *test.Hook, msg string) *logrus.Entry {
	for _, e := range hook.AllEntries() {
		if e.Message == msg {
			return e
		}
	}
	return nil
}
