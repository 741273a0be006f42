package codec

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
)

// coreSchemaNonString YAML 1.2 core 스키마에서 숫자(정수, 실수, inf, nan)로 해석되는 평문 스칼라
var coreSchemaNonString = regexp.MustCompile(`^(?:[-+]?(?:\.[0-9]+|[0-9]+(?:\.[0-9]*)?)(?:[eE][-+]?[0-9]+)?|[-+]?\.(?:inf|Inf|INF)|\.(?:nan|NaN|NAN)|0o[0-7]+|0x[0-9a-fA-F]+)$`)

// marshalString 숫자로 해석될 수 있거나 제어 문자를 포함한 문자열을 큰따옴표로 감쌉니다.
// 그 외에는 goccy/go-yaml의 기본 규칙을 따릅니다. (예: "1e3" -> "\"1e3\"", "뉴스" -> "뉴스")
func marshalString(s string) ([]byte, error) {
	if coreSchemaNonString.MatchString(s) || strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return []byte(strconv.Quote(s)), nil
	}
	return yaml.Marshal(s)
}

type yamlCodec struct{}

// NewYAML YAML 코덱을 반환합니다.
func NewYAML() Codec {
	return yamlCodec{}
}

func (yamlCodec) Format() Format {
	return YAML
}

func (yamlCodec) MediaType() string {
	return MediaTypeYAML
}

func (yamlCodec) Encode(v any) ([]byte, error) {
	data, err := yaml.MarshalWithOptions(v, yaml.CustomMarshaler[string](marshalString))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "YAML 인코딩에 실패했습니다")
	}
	return data, nil
}

func (yamlCodec) Decode(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return apperrors.Wrap(err, apperrors.ParsingFailed, "YAML 디코딩에 실패했습니다")
	}
	return nil
}
