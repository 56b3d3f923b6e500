// Package config 추적 번호 서버의 설정을 기본값, JSON 파일, 환경 변수 순서로 읽어 검증합니다.
//
// 환경 변수는 TRACKING_ 접두사를 사용하며 이중 언더스코어(__)가 계층 구분자입니다.
//
//	TRACKING_API__LISTEN_PORT=9090           -> api.listen_port
//	TRACKING_API__CORS__ALLOW_ORIGINS=a,b    -> api.cors.allow_origins
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
	"github.com/kvishnublr/GetroRepo/pkg/strutil"
)

const (
	// AppName 애플리케이션 식별자. 로그 파일명과 기본 설정 파일명에 사용됩니다.
	AppName = "tracking-server"

	// DefaultFilename 경로를 지정하지 않았을 때 찾는 설정 파일
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수 접두사
	EnvPrefix = "TRACKING_"
)

// 기본값
const (
	DefaultListenPort        = 8080
	DefaultMaxBatchSize      = 1000
	DefaultRequestTimeout    = 10 * time.Second
	DefaultRequestsPerSecond = 20
	DefaultBurst             = 40
	DefaultReporterTimeSpec  = "0 */5 * * * *"
)

// AppConfig 최상위 설정
type AppConfig struct {
	Debug    bool           `json:"debug"`
	API      APIConfig      `json:"api"`
	Reporter ReporterConfig `json:"reporter"`
}

// APIConfig HTTP API 서버 설정
type APIConfig struct {
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,tls_file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,tls_file"`

	// MaxBatchSize 한 번의 요청으로 발급할 수 있는 최대 추적 번호 개수
	MaxBatchSize int `json:"max_batch_size" validate:"min=1,max=100000"`

	RequestTimeout time.Duration   `json:"request_timeout" validate:"gt=0"`
	RateLimit      RateLimitConfig `json:"rate_limit"`
	CORS           CORSConfig      `json:"cors"`
}

// RateLimitConfig IP별 요청 제한 설정
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gt=0"`
	Burst             int     `json:"burst" validate:"min=1"`
}

// CORSConfig 교차 출처 요청 허용 설정
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// ReporterConfig 발급 통계를 주기적으로 로그에 남기는 리포터 설정
type ReporterConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron_spec"`
}

// VerifyRecommendations 에러는 아니지만 운영 시 주의가 필요한 설정을 경고 메시지로 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.ListenPort < 1024 {
		warnings = append(warnings, "시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다. 서버 구동 시 관리자 권한이 필요할 수 있습니다")
	}
	if len(c.API.CORS.AllowOrigins) == 1 && c.API.CORS.AllowOrigins[0] == "*" {
		warnings = append(warnings, "CORS가 모든 출처(*)를 허용하도록 설정되어 있습니다")
	}

	return warnings
}

func defaultConfig() AppConfig {
	return AppConfig{
		API: APIConfig{
			ListenPort:     DefaultListenPort,
			MaxBatchSize:   DefaultMaxBatchSize,
			RequestTimeout: DefaultRequestTimeout,
			RateLimit: RateLimitConfig{
				RequestsPerSecond: DefaultRequestsPerSecond,
				Burst:             DefaultBurst,
			},
			CORS: CORSConfig{AllowOrigins: []string{"*"}},
		},
		Reporter: ReporterConfig{
			Enabled:  true,
			TimeSpec: DefaultReporterTimeSpec,
		},
	}
}

// Load 기본 설정 파일을 읽어 설정을 로드합니다. 파일이 없으면 기본값과 환경 변수만 사용합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, false)
}

// LoadWithFile filename 의 설정 파일을 읽어 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, true)
}

func load(filename string, required bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(defaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		notExist := errors.Is(err, os.ErrNotExist)
		switch {
		case notExist && !required:
		case notExist:
			return nil, apperrors.Wrapf(err, apperrors.System, "설정 파일을 찾을 수 없습니다: '%s'", filename)
		default:
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일 로드 중 오류가 발생했습니다: '%s'", filename)
		}
	}

	// 3. 환경 변수
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 변환 (알 수 없는 키는 에러)
	var cfg AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := cfg.validate(newValidator()); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정('%s')의 유효성 검증에 실패했습니다", filename)
	}

	return &cfg, nil
}

// envTransform TRACKING_API__LISTEN_PORT 형태의 환경 변수 이름을 api.listen_port 키로 변환합니다.
// 목록 값은 쉼표로 분리합니다.
func envTransform(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")

	if key == "api.cors.allow_origins" {
		return key, strutil.SplitAndTrim(value, ",")
	}
	return key, value
}
