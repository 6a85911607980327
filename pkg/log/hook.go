package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// discardFormatter 전역 로거 자체의 출력은 버리고 hook의 sink들만 포맷팅하도록 할 때 사용합니다.
type discardFormatter struct{}

func (discardFormatter) Format(*Entry) ([]byte, error) { return nil, nil }

// sink 레벨 조건을 만족하는 로그를 받는 출력 대상입니다.
type sink struct {
	name   string
	w      io.Writer
	accept func(Level) bool

	// bestEffort 쓰기 실패를 stderr에만 알리고 logrus에는 에러로 보고하지 않습니다.
	bestEffort bool
}

func acceptAll(Level) bool        { return true }
func acceptMain(l Level) bool     { return l <= InfoLevel }
func acceptCritical(l Level) bool { return l <= ErrorLevel }
func acceptVerbose(l Level) bool  { return l >= DebugLevel }

// hook 한 번 포맷팅한 로그를 조건에 맞는 모든 sink로 보냅니다.
//
//	main     INFO 이상
//	critical ERROR 이상
//	verbose  DEBUG 이하
//	console  전체
type hook struct {
	formatter Formatter
	sinks     []sink

	mu      sync.RWMutex
	stopped bool
}

func (h *hook) Levels() []Level { return logrus.AllLevels }

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.stopped {
		return nil
	}

	var line []byte
	var errs error

	for _, s := range h.sinks {
		if !s.accept(entry.Level) {
			continue
		}

		if line == nil {
			b, err := h.formatter.Format(entry)
			if err != nil {
				return err
			}
			line = b
		}

		if _, err := s.w.Write(line); err != nil {
			fmt.Fprintf(os.Stderr, "[log] %s 출력 실패: %v\n", s.name, err)
			if !s.bestEffort {
				errs = errors.Join(errs, fmt.Errorf("%s: %w", s.name, err))
			}
		}
	}

	return errs
}

// stop 이후의 Fire를 무시합니다. 진행 중인 Fire가 끝날 때까지 기다립니다.
func (h *hook) stop() {
	h.mu.Lock()
	h.stopped = true
	h.mu.Unlock()
}

// closer hook을 멈춘 뒤 로그 파일을 닫습니다. 여러 번 호출해도 한 번만 닫습니다.
type closer struct {
	hook  *hook
	files []io.Closer

	once sync.Once
	err  error
}

func (c *closer) Close() error {
	c.once.Do(func() {
		c.hook.stop()
		for _, f := range c.files {
			c.err = errors.Join(c.err, f.Close())
		}
	})
	return c.err
}
