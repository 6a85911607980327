// Package docs API 문서(Swagger/OpenAPI 2.0)를 제공합니다.
//
// 핸들러의 godoc 주석(@Summary, @Router 등)과 내용을 일치시켜야 합니다.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "서비스 환영 메시지와 현재 버전, 실행 환경을 반환합니다.",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "환영 메시지",
                "responses": {
                    "200": {
                        "description": "환영 메시지",
                        "schema": {"$ref": "#/definitions/system.WelcomeResponse"}
                    }
                }
            }
        },
        "/api/info": {
            "get": {
                "description": "서비스 이름, 설명, 버전과 공개 엔드포인트 목록을 반환합니다.",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "API 정보",
                "responses": {
                    "200": {
                        "description": "API 정보",
                        "schema": {"$ref": "#/definitions/system.InfoResponse"}
                    }
                }
            }
        },
        "/api/version": {
            "get": {
                "description": "애플리케이션 버전, 실행 환경, Go 버전을 반환합니다.\n배포된 버전 확인에 사용됩니다.",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "버전 정보",
                "responses": {
                    "200": {
                        "description": "버전 정보",
                        "schema": {"$ref": "#/definitions/system.VersionResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "서버 상태와 가동 시간(초, 소수점 둘째 자리)을 반환합니다.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "헬스체크",
                "responses": {
                    "200": {
                        "description": "헬스체크 결과",
                        "schema": {"$ref": "#/definitions/health.HealthStatus"}
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "프로세스가 살아있는지 확인합니다. 현재 Unix 시각(초)을 함께 반환합니다.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "생존 상태 점검 (Liveness)",
                "responses": {
                    "200": {
                        "description": "생존",
                        "schema": {"$ref": "#/definitions/health.LivenessStatus"}
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "트래픽을 받을 준비가 되었는지 확인합니다.\n모든 점검 항목이 통과하면 200, 하나라도 실패하면 503을 반환합니다.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "준비 상태 점검 (Readiness)",
                "responses": {
                    "200": {
                        "description": "준비 완료",
                        "schema": {"$ref": "#/definitions/health.ReadinessStatus"}
                    },
                    "503": {
                        "description": "준비되지 않음",
                        "schema": {"$ref": "#/definitions/health.ReadinessStatus"}
                    }
                }
            }
        }
    },
    "definitions": {
        "health.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "uptime_seconds": {"type": "number", "example": 12.34}
            }
        },
        "health.LivenessStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "alive"},
                "timestamp": {"type": "number", "example": 1700000000.123456}
            }
        },
        "health.ReadinessStatus": {
            "type": "object",
            "properties": {
                "checks": {
                    "type": "object",
                    "additionalProperties": {"type": "boolean"}
                },
                "status": {
                    "type": "string",
                    "enum": ["ready", "not_ready"],
                    "example": "ready"
                }
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "요청한 리소스를 찾을 수 없습니다"},
                "result_code": {"type": "integer", "example": 404}
            }
        },
        "system.EndpointInfo": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "Health check"},
                "method": {"type": "string", "example": "GET"},
                "path": {"type": "string", "example": "/health"}
            }
        },
        "system.InfoResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "A web API for learning continuous deployment"},
                "endpoints": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/system.EndpointInfo"}
                },
                "name": {"type": "string", "example": "CD Exercise API"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "system.VersionResponse": {
            "type": "object",
            "properties": {
                "environment": {"type": "string", "example": "development"},
                "go_version": {"type": "string", "example": "go1.24.11"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "system.WelcomeResponse": {
            "type": "object",
            "properties": {
                "environment": {"type": "string", "example": "development"},
                "message": {"type": "string", "example": "Welcome to CD Exercise API"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CD Exercise API",
	Description:      "지속적 배포(CD) 실습을 위한 최소한의 데모 웹 API입니다.\n\n환영 메시지, 버전 정보, API 정보와 Kubernetes 방식의 헬스체크(health/readiness/liveness) 엔드포인트를 제공합니다.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
