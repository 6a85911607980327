// Package errors 분류(ErrorType)가 붙은 애플리케이션 에러를 제공합니다.
//
//	if err := k.Load(file.Provider(name), json.Parser()); err != nil {
//	    return errors.Wrapf(err, errors.InvalidInput, "설정 파일 로드 실패: '%s'", name)
//	}
//
//	if errors.Is(err, errors.InvalidInput) {
//	    // 설정 오류
//	}
package errors

import (
	"errors"
	"fmt"
)

// AppError ErrorType과 메시지, 원인 에러를 함께 담는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
}

// Type 에러의 분류를 반환합니다.
func (e *AppError) Type() ErrorType { return e.errType }

// Message 원인 에러를 제외한 메시지를 반환합니다.
func (e *AppError) Message() string { return e.message }

func (e *AppError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.errType, e.message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
}

func (e *AppError) Unwrap() error { return e.cause }

// New 원인 에러가 없는 AppError를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{errType: errType, message: message}
}

// Newf New의 포맷 문자열 버전입니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return New(errType, fmt.Sprintf(format, args...))
}

// Wrap err에 분류와 메시지를 덧붙입니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: message, cause: err}
}

// Wrapf Wrap의 포맷 문자열 버전입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, errType, fmt.Sprintf(format, args...))
}

// Is 에러 체인 어딘가에 errType으로 분류된 AppError가 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	var appErr *AppError
	for errors.As(err, &appErr) {
		if appErr.errType == errType {
			return true
		}
		err = appErr.cause
	}
	return false
}

// As 표준 errors.As와 같습니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}
