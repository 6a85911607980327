package log

// callerPathPrefix 모듈 경로. 로그의 함수 경로를 짧게 표시하기 위해 사용합니다.
const callerPathPrefix = "github.com/darkkaiser/cd-exercise-api"

// NewOptionsForEnvironment 실행 환경 이름에 맞는 로그 설정을 반환합니다.
//
// development는 콘솔 출력과 Trace 레벨을 사용하고 파일은 짧게 보관합니다.
// 그 외 환경은 critical/verbose 파일을 분리하여 30일간 보관합니다.
func NewOptionsForEnvironment(appName, environment string) Options {
	opts := Options{
		Name:             appName,
		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}

	if environment == "development" {
		opts.Level = TraceLevel
		opts.MaxAge, opts.MaxSizeMB, opts.MaxBackups = 1, 50, 5
		opts.EnableConsoleLog = true
		return opts
	}

	opts.Level = InfoLevel
	opts.MaxAge, opts.MaxSizeMB, opts.MaxBackups = 30, defaultMaxSizeMB, defaultMaxBackups
	opts.EnableCriticalLog = true
	opts.EnableVerboseLog = true
	return opts
}
