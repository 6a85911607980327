package log

import (
	"bytes"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// resetForTest 전역 상태(setupOnce, logrus 설정)를 초기화하여 테스트 간 독립성을 보장합니다.
func resetForTest() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}

// safeBuffer hook.Fire는 동시에 호출될 수 있으므로 동시성 안전한 버퍼를 사용합니다.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
