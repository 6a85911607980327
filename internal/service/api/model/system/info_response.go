package system

// InfoResponse API 정보 응답
type InfoResponse struct {
	Name        string         `json:"name" example:"CD Exercise API"`
	Description string         `json:"description" example:"A web API for learning continuous deployment"`
	Version     string         `json:"version" example:"1.0.0"`
	Endpoints   []EndpointInfo `json:"endpoints"`
}

// EndpointInfo 공개 엔드포인트 설명
type EndpointInfo struct {
	Path        string `json:"path" example:"/health"`
	Method      string `json:"method" example:"GET"`
	Description string `json:"description" example:"Health check"`
}
