package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/cd-exercise-api/internal/pkg/errors"
	"github.com/darkkaiser/cd-exercise-api/internal/pkg/version"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName = "cd-exercise-api"

	// DefaultFilename 선택적으로 읽어들이는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvironmentDevelopment 개발 환경 이름. 이 환경에서만 디버그 모드가 활성화됩니다.
	EnvironmentDevelopment = "development"

	// DefaultListenPort HTTP 서버의 기본 포트
	DefaultListenPort = 5000

	// envPrefix 계층형 설정 키를 위한 환경 변수 접두사
	// 예: CDX_HTTP__ALLOW_ORIGINS -> http.allow_origins
	envPrefix = "CDX_"
)

// envAliases 배포 환경에서 이미 사용 중인 환경 변수 이름과 설정 키의 매핑입니다.
// 이 키들은 CDX_ 접두사 형식으로는 설정할 수 없습니다.
var envAliases = map[string]string{
	"FLASK_ENV":   "environment",
	"APP_VERSION": "version",
	"PORT":        "http.listen_port",
}

// AppConfig 애플리케이션 설정의 최상위 구조체입니다.
// 시작 시 한 번 로드된 후에는 변경되지 않습니다.
type AppConfig struct {
	Environment string     `json:"environment" validate:"required"`
	Version     string     `json:"version" validate:"required"`
	HTTP        HTTPConfig `json:"http"`
}

// Debug 개발 환경 여부를 반환합니다.
func (c *AppConfig) Debug() bool {
	return c.Environment == EnvironmentDevelopment
}

// HTTPConfig HTTP 서버 설정
type HTTPConfig struct {
	ListenPort   int      `json:"listen_port" validate:"min=1,max=65535"`
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// newDefaultConfig 어떤 설정 소스도 없을 때 적용되는 기본값을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Environment: EnvironmentDevelopment,
		Version:     version.Version(),
		HTTP: HTTPConfig{
			ListenPort:   DefaultListenPort,
			AllowOrigins: []string{"*"},
		},
	}
}

// Load 기본 설정 파일과 환경 변수로부터 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 설정 파일과 환경 변수로부터 설정을 로드합니다.
//
// 우선순위 (낮음 -> 높음): 기본값 < JSON 설정 파일 < 환경 변수
// 설정 파일이 존재하지 않으면 건너뜁니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 (선택)
	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
				return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일 로드 중 오류가 발생했습니다: '%s'", filename)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrapf(err, apperrors.System, "설정 파일에 접근할 수 없습니다: '%s'", filename)
		}
	}

	// 3. 환경 변수
	if err := k.Load(env.ProviderWithValue("", ".", mapEnv), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 알 수 없는 설정 키는 오타일 가능성이 높으므로 에러로 처리
			WeaklyTypedInput: true, // PORT="8080" 같은 문자열 값을 숫자로 변환
		},
	}

	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, err
	}

	return &appConfig, nil
}

// mapEnv 환경 변수를 설정 키와 값으로 변환합니다. 빈 키를 반환하면 해당 변수는 무시됩니다.
// 값이 비어있는 변수도 설정되지 않은 것으로 간주합니다.
func mapEnv(key, value string) (string, any) {
	k := normalizeEnvKey(key)
	if k == "" || strings.TrimSpace(value) == "" {
		return "", nil
	}

	// 목록형 값은 쉼표로 구분합니다. (예: CDX_HTTP__ALLOW_ORIGINS=https://a.com,https://b.com)
	if k == "http.allow_origins" {
		var origins []string
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return k, origins
	}

	return k, value
}

// normalizeEnvKey 환경 변수 이름을 koanf 설정 키로 변환합니다.
//
//	FLASK_ENV               -> environment
//	PORT                    -> http.listen_port
//	CDX_HTTP__ALLOW_ORIGINS -> http.allow_origins
//	HOME                    -> "" (무시)
func normalizeEnvKey(key string) string {
	if k, ok := envAliases[key]; ok {
		return k
	}

	rest, found := strings.CutPrefix(key, envPrefix)
	if !found || rest == "" {
		return ""
	}

	k := strings.ReplaceAll(strings.ToLower(rest), "__", ".")
	for _, alias := range envAliases {
		if k == alias {
			return ""
		}
	}

	return k
}
