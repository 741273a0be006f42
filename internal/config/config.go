// Package config 애플리케이션 설정을 기본값, JSON 설정 파일, 환경 변수 순서로 병합하여 로드합니다.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "screen-scraping-server"

	// DefaultFilename 실행 인자로 설정 파일 경로가 주어지지 않았을 때 사용하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: SCREEN_SCRAPING_URL__ADDRESS -> url.address
	EnvPrefix = "SCREEN_SCRAPING_"
)

// KeyURLAddress 스크래핑 대상 페이지 주소의 설정 키
const KeyURLAddress = "url.address"

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug   bool          `json:"debug"`
	URL     URLConfig     `json:"url"`
	Scraper ScraperConfig `json:"scraper"`
	API     APIConfig     `json:"api"`
	Log     LogConfig     `json:"log"`

	// k 병합이 완료된 원본 설정 트리 (String 조회용)
	k *koanf.Koanf

	// source 실제로 읽어들인 설정 파일 경로 (파일이 없었으면 빈 문자열)
	source string
}

// URLConfig 스크래핑 대상 페이지 설정
//
// 주소가 비어 있어도 서버는 기동되며, 이 경우 스크래핑 요청은 400으로 응답합니다.
type URLConfig struct {
	Address string `json:"address" validate:"omitempty,scrape_url"`
}

// ScraperConfig 페이지를 가져오고 제목을 추출하는 방식에 대한 설정
type ScraperConfig struct {
	Timeout         string         `json:"timeout" validate:"duration"`
	MaxBodySize     int64          `json:"max_body_size" validate:"min=1"`
	UserAgent       string         `json:"user_agent"`
	NormalizeSpaces bool           `json:"normalize_spaces"`
	Selector        SelectorConfig `json:"selector"`
}

// TimeoutDuration Timeout을 time.Duration으로 변환합니다. 검증을 통과한 설정에서만 호출해야 합니다.
func (c ScraperConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(strings.TrimSpace(c.Timeout))
	return d
}

// SelectorConfig 추출 대상 요소 (태그 이름 + class 부분 문자열)
type SelectorConfig struct {
	Tag           string `json:"tag" validate:"required"`
	ClassContains string `json:"class_contains"`
}

// APIConfig REST API 서버 설정
type APIConfig struct {
	ListenPort     int        `json:"listen_port" validate:"min=1,max=65535"`
	RequestTimeout string     `json:"request_timeout" validate:"duration"`
	BodyLimit      string     `json:"body_limit" validate:"required"`
	EnableSwagger  bool       `json:"enable_swagger"`
	EnableMetrics  bool       `json:"enable_metrics"`
	CORS           CORSConfig `json:"cors"`
}

// RequestTimeoutDuration RequestTimeout을 time.Duration으로 변환합니다.
func (c APIConfig) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(strings.TrimSpace(c.RequestTimeout))
	return d
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	for _, origin := range c.AllowOrigins {
		if strings.TrimSpace(origin) == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return nil
}

// LogConfig 로그 파일 설정
type LogConfig struct {
	Dir           string `json:"dir" validate:"required"`
	MaxAge        int    `json:"max_age" validate:"min=0"`
	EnableConsole bool   `json:"enable_console"`
}

// NewDefaultConfig 설정 파일과 환경 변수가 없을 때 사용되는 기본 설정을 반환합니다.
func NewDefaultConfig() *AppConfig {
	return &AppConfig{
		Debug: false,
		Scraper: ScraperConfig{
			Timeout:     "30s",
			MaxBodySize: 10 * 1024 * 1024,
			Selector: SelectorConfig{
				Tag:           "td",
				ClassContains: "title",
			},
		},
		API: APIConfig{
			ListenPort:     8080,
			RequestTimeout: "60s",
			BodyLimit:      "2M",
			EnableSwagger:  true,
			EnableMetrics:  true,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
		},
		Log: LogConfig{
			Dir:           "logs",
			MaxAge:        30,
			EnableConsole: true,
		},
	}
}

// String 병합된 설정 트리에서 key(예: "url.address")에 해당하는 문자열 값을 반환합니다.
// 값이 없으면 빈 문자열을 반환합니다. Load를 거치지 않고 직접 생성한 설정은 url.address만 조회할 수 있습니다.
func (c *AppConfig) String(key string) string {
	if c == nil {
		return ""
	}
	if c.k == nil {
		if key == KeyURLAddress {
			return c.URL.Address
		}
		return ""
	}
	return c.k.String(key)
}

// Source 실제로 읽어들인 설정 파일 경로를 반환합니다. 파일 없이 기본값과 환경 변수만 사용했다면 빈 문자열입니다.
func (c *AppConfig) Source() string {
	return c.source
}

// validate 설정 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "애플리케이션 설정"); err != nil {
		return err
	}
	return c.API.CORS.validate()
}

// normalizeEnvKey SCREEN_SCRAPING_API__LISTEN_PORT -> api.listen_port
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
//
// 우선순위는 환경 변수 > 설정 파일 > 기본값 순이며, 설정 파일이 없으면 건너뜁니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(NewDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	source := filename
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
		source = ""
	}

	// 3. 환경 변수 로드 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 구조체에 없는 키가 있으면 에러
			WeaklyTypedInput: true,
		},
	}
	appConfig := &AppConfig{}
	unmarshalConf.DecoderConfig.Result = appConfig
	if err := k.UnmarshalWithConf("", appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}
	appConfig.k = k
	appConfig.source = source

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정의 유효성 검증에 실패했습니다")
	}

	return appConfig, nil
}
