package constants

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	// ComponentService 서비스 컴포넌트 이름
	ComponentService = "api.service"

	// ComponentHandler 핸들러 컴포넌트 이름
	ComponentHandler = "api.handler"

	// ComponentMiddlewareRateLimit 속도 제한 미들웨어 컴포넌트 이름
	ComponentMiddlewareRateLimit = "api.middleware.rate_limit"

	// ComponentMiddlewarePanicRecovery 패닉 복구 미들웨어 컴포넌트 이름
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"

	// ComponentMiddlewareMetrics 메트릭 수집 미들웨어 컴포넌트 이름
	ComponentMiddlewareMetrics = "api.middleware.metrics"

	// ComponentEcho Echo 프레임워크 내부 로그의 컴포넌트 이름
	ComponentEcho = "api.echo"

	// ComponentErrorHandler 에러 핸들러 컴포넌트 이름
	ComponentErrorHandler = "api.error_handler"
)
