package system

// WelcomeResponse 루트 엔드포인트 응답
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to CD Exercise API"`
	Version string `json:"version" example:"1.0.0"`

	// Environment 실행 환경
	Environment string `json:"environment" example:"development"`
}
