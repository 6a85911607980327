package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	setupOnce      sync.Once
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 logrus 로거가 opts에 따라 파일과 콘솔로 기록하도록 구성합니다.
//
// 프로세스에서 한 번만 적용되며 이후 호출은 최초 결과를 그대로 반환합니다.
// 반환된 Closer는 종료 직전에 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})
	return globalCloser, globalSetupErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}
	opts = opts.withDefaults()

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	h := &hook{formatter: newTextFormatter(opts.CallerPathPrefix)}
	c := &closer{hook: h}

	addFile := func(label, suffix string, accept func(Level) bool) {
		f := opts.rotatingFile(suffix)
		h.sinks = append(h.sinks, sink{name: label, w: f, accept: accept})
		c.files = append(c.files, f)
	}

	addFile("main", "", acceptMain)
	if opts.EnableCriticalLog {
		addFile("critical", "critical", acceptCritical)
	}
	if opts.EnableVerboseLog {
		addFile("verbose", "verbose", acceptVerbose)
	}
	if opts.EnableConsoleLog {
		h.sinks = append(h.sinks, sink{name: "stdout", w: os.Stdout, accept: acceptAll, bestEffort: true})
	}

	logrus.SetLevel(opts.Level)
	logrus.SetReportCaller(opts.ReportCaller)
	logrus.SetFormatter(discardFormatter{})
	logrus.SetOutput(io.Discard)
	logrus.AddHook(h)

	// Fatal 로그로 종료되기 전에 파일을 닫습니다.
	logrus.RegisterExitHandler(func() { _ = c.Close() })

	return c, nil
}

// newTextFormatter 호출자를 "함수(line:N)"로 표기하는 TextFormatter를 생성합니다.
func newTextFormatter(prefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (string, string) {
			function := frame.Function
			if prefix != "" {
				if rest, ok := strings.CutPrefix(function, prefix); ok {
					function = "..." + rest
				}
			}
			return function + "(line:" + strconv.Itoa(frame.Line) + ")", ""
		},
	}
}
