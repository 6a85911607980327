package constants

// 클라이언트에게 노출되는 API 식별 정보입니다.
const (
	// APIName 서비스 표시 이름
	APIName = "CD Exercise API"

	// APIDescription 서비스 설명
	APIDescription = "A web API for learning continuous deployment"

	// WelcomeMessage GET / 응답 메시지
	WelcomeMessage = "Welcome to CD Exercise API"
)

// 엔드포인트 경로
const (
	PathRoot       = "/"
	PathHealth     = "/health"
	PathReadiness  = "/health/ready"
	PathLiveness   = "/health/live"
	PathAPIVersion = "/api/version"
	PathAPIInfo    = "/api/info"
	PathMetrics    = "/metrics"
	PathSwagger    = "/swagger/*"
)
