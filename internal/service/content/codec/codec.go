// Package codec 응답 페이로드를 직렬화/역직렬화하는 코덱과 코덱 레지스트리를 제공합니다.
//
// 지원하는 형식은 JSON과 YAML 두 가지이며, 어떤 코덱을 사용할지는
// negotiation 패키지가 요청의 미디어 타입을 기준으로 결정합니다.
package codec

import (
	"encoding/json"

	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
)

// Format 코덱이 처리하는 데이터 형식입니다.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// 코덱이 응답 헤더에 사용하는 대표 미디어 타입
const (
	MediaTypeJSON = "application/json"
	MediaTypeYAML = "application/yaml"
)

// Codec 하나의 미디어 타입에 대한 인코더/디코더 쌍입니다.
type Codec interface {
	Format() Format
	MediaType() string
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type jsonCodec struct{}

// NewJSON JSON 코덱을 반환합니다.
func NewJSON() Codec {
	return jsonCodec{}
}

func (jsonCodec) Format() Format {
	return JSON
}

func (jsonCodec) MediaType() string {
	return MediaTypeJSON
}

func (jsonCodec) Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "JSON 인코딩에 실패했습니다")
	}
	return data, nil
}

func (jsonCodec) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.Wrap(err, apperrors.ParsingFailed, "JSON 디코딩에 실패했습니다")
	}
	return nil
}
