package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadTimeout 요청 본문까지 읽는 데 허용되는 최대 시간
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout 응답 쓰기에 허용되는 최대 시간. 요청 타임아웃보다 길어야 합니다.
	DefaultWriteTimeout = 75 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 버스트 허용량
	DefaultRateLimitBurst = 40
)
