package errors

import "fmt"

// ErrorType 에러의 분류입니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (복구된 panic 등)
	Internal

	// System 파일 I/O, 포트 바인딩 같은 실행 환경 오류
	System

	// InvalidInput 설정값 검증 실패 등 잘못된 입력
	InvalidInput
)

func (t ErrorType) String() string {
	switch t {
	case Unknown:
		return "Unknown"
	case Internal:
		return "Internal"
	case System:
		return "System"
	case InvalidInput:
		return "InvalidInput"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}
