package system

// VersionResponse 버전 정보 응답
type VersionResponse struct {
	// Version 애플리케이션 버전 (APP_VERSION)
	Version string `json:"version" example:"1.0.0"`

	// Environment 실행 환경 (FLASK_ENV)
	Environment string `json:"environment" example:"development"`

	// GoVersion 빌드에 사용된 Go 버전
	GoVersion string `json:"go_version" example:"go1.24.11"`
}
