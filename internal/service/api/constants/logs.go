package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버가 요청을 받을 수 없는 상태로 종료되었습니다"

	// ------------------------------------------------------------------------------------------------
	// 핸들러
	// ------------------------------------------------------------------------------------------------

	LogMsgWelcome        = "환영 메시지 조회"
	LogMsgVersionInfo    = "버전 정보 조회"
	LogMsgAPIInfo        = "API 정보 조회"
	LogMsgHealthCheck    = "헬스체크 조회"
	LogMsgReadinessCheck = "준비 상태 조회"
	LogMsgLivenessCheck  = "생존 상태 조회"
	LogMsgNotReady       = "준비 상태 점검 실패: 트래픽을 받을 수 없는 상태입니다"

	// ------------------------------------------------------------------------------------------------
	// 미들웨어 / 에러 핸들러
	// ------------------------------------------------------------------------------------------------

	LogMsgHTTPRequest         = "HTTP 요청"
	LogMsgPanicRecovered      = "패닉 복구: 예기치 못한 오류가 발생하여 안전하게 복구했습니다"
	LogMsgRateLimitExceeded   = "요청 차단: 속도 제한(Rate Limit)을 초과하였습니다"
	LogMsgHTTP5xxServerError  = "HTTP 5xx: 서버 내부 오류가 발생했습니다"
	LogMsgHTTP4xxClientError  = "HTTP 4xx: 클라이언트 요청 오류가 발생했습니다"
	LogMsgMetricsRegisterFail = "메트릭 수집기 등록에 실패했습니다"
)
