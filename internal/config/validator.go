package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/cd-exercise-api/internal/pkg/errors"
	"github.com/darkkaiser/cd-exercise-api/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 커스텀 규칙이 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명(ListenPort) 대신 JSON 키(listen_port)를 표시합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

// validate 설정 값의 정합성을 검증하고, 첫 번째 위반 항목을 사용자 친화적인 메시지로 변환합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := v.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if apperrors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return apperrors.New(apperrors.InvalidInput, describeFieldError(validationErrors[0]))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	// 와일드카드는 단독으로만 사용할 수 있습니다.
	for _, origin := range c.HTTP.AllowOrigins {
		if origin == "*" && len(c.HTTP.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return nil
}

func describeFieldError(fe validator.FieldError) string {
	// 슬라이스 요소의 에러는 필드명에 인덱스가 붙습니다. (예: AllowOrigins[0])
	field, _, _ := strings.Cut(fe.StructField(), "[")

	switch field {
	case "Environment":
		return "실행 환경(environment, FLASK_ENV)은 비어있을 수 없습니다"
	case "Version":
		return "애플리케이션 버전(version, APP_VERSION)은 비어있을 수 없습니다"
	case "ListenPort":
		return fmt.Sprintf("웹 서버 포트(listen_port, PORT)는 1에서 65535 사이의 값이어야 합니다: %v", fe.Value())
	case "AllowOrigins":
		if fe.Tag() == "min" {
			return "CORS 허용 도메인(allow_origins) 목록이 비어있습니다"
		}
		return fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value())
	}

	return fmt.Sprintf("설정 값이 올바르지 않습니다: %s (조건: %s)", fe.Namespace(), fe.Tag())
}

// VerifyRecommendations 운영 안정성을 위해 권장되는 설정과 다른 항목을 경고 메시지로 반환합니다.
// 에러를 발생시키지는 않습니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTP.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTP.ListenPort))
	}

	if !c.Debug() {
		for _, origin := range c.HTTP.AllowOrigins {
			if origin == "*" {
				warnings = append(warnings, fmt.Sprintf("'%s' 환경에서 모든 Origin(*)의 CORS 요청을 허용하고 있습니다", c.Environment))
				break
			}
		}
	}

	return warnings
}
