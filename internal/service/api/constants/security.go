package constants

import "time"

// 보안 관련 상수입니다.
const (
	// DefaultMaxBodySize 요청 본문의 최대 크기 (128KB)
	// 모든 엔드포인트가 GET 요청만 처리하므로 작게 유지합니다.
	DefaultMaxBodySize = "128K"

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (10초)
	// 헤더를 매우 느리게 전송하여 연결을 고갈시키는 공격(Slowloris)을 방지합니다.
	DefaultReadHeaderTimeout = 10 * time.Second
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"access_token",
	"password",
	"token",
	"secret",
}
