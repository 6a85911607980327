// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

// Mask 로그에 남기면 안 되는 민감한 값(토큰, 키 등)을 일부만 보이도록 가립니다.
//
//	""                -> ""
//	"abc"             -> "***"
//	"secret123"       -> "secr***"
//	"verylongtoken99" -> "very***en99"
func Mask(s string) string {
	if s == "" {
		return ""
	}

	if len(s) <= 3 {
		return "***"
	}

	if len(s) <= 12 {
		return s[:4] + "***"
	}

	return s[:4] + "***" + s[len(s)-4:]
}
