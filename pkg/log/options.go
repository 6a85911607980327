package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

// Options 로거 설정입니다.
type Options struct {
	Name  string // 로그 파일명에 사용할 애플리케이션 식별자
	Dir   string // 로그 디렉토리 (빈 값이면 "logs")
	Level Level  // 로그 레벨 (0이면 Info)

	MaxAge     int // 보관 일수 (0: 삭제 안 함)
	MaxSizeMB  int // 파일당 최대 크기 (0: 100MB)
	MaxBackups int // 최대 백업 파일 수 (0: 20개)

	EnableCriticalLog bool // ERROR 이상을 <Name>.critical.log로도 기록
	EnableVerboseLog  bool // DEBUG 이하를 메인 로그 대신 <Name>.verbose.log로 기록
	EnableConsoleLog  bool // 표준 출력에도 기록

	ReportCaller bool

	// CallerPathPrefix 호출자 함수 경로에서 "..."로 줄여 표시할 접두사
	CallerPathPrefix string
}

// Validate 잘못된 설정을 모두 모아 하나의 에러로 반환합니다.
func (opts *Options) Validate() error {
	var errs []error

	if opts.Name == "" {
		errs = append(errs, errors.New("애플리케이션 식별자(Name)가 설정되지 않았습니다"))
	}
	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			errs = append(errs, fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir))
		}
	}
	for name, v := range map[string]int{"MaxAge": opts.MaxAge, "MaxSizeMB": opts.MaxSizeMB, "MaxBackups": opts.MaxBackups} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s는 0 이상이어야 합니다: %d", name, v))
		}
	}

	return errors.Join(errs...)
}

// withDefaults 0 값 필드를 기본값으로 채운 사본을 반환합니다.
func (opts Options) withDefaults() Options {
	if opts.Dir == "" {
		opts.Dir = defaultDir
	}
	if opts.Level == 0 {
		opts.Level = InfoLevel
	}
	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = defaultMaxSizeMB
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = defaultMaxBackups
	}
	return opts
}

// rotatingFile <Dir>/<Name>[.suffix].log 경로의 회전 로그 파일을 생성합니다.
func (opts Options) rotatingFile(suffix string) *lumberjack.Logger {
	name := opts.Name
	if suffix != "" {
		name += "." + suffix
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, name+".log"),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		LocalTime:  true,
	}
}
