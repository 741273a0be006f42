// Package negotiation 요청 메타데이터를 보고 (1) 요청 본문의 Content-Type이 허용되는지,
// (2) 응답에 어떤 코덱을 사용할지를 결정합니다.
//
// 응답 코덱 선택은 관대한(permissive) 정책을 따릅니다. 요청한 미디어 타입이 YAML 계열이면
// YAML 코덱을, 그 외의 모든 경우(미지정, 알 수 없는 타입 포함)에는 JSON 코덱을 선택하며
// 406 Not Acceptable로 거절하지 않습니다.
package negotiation

import (
	"mime"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/matjazbravc/screen-scraping-server/internal/service/content/codec"
)

// 서비스가 인식하는 미디어 타입
const (
	MediaTypeApplicationJSON  = "application/json"
	MediaTypeApplicationYAML  = "application/yaml"
	MediaTypeApplicationXYAML = "application/x-yaml"
	MediaTypeTextYAML         = "text/yaml"

	// MediaTypeApplicationXML 선언만 되어 있으며 허용 목록에는 포함되지 않습니다.
	MediaTypeApplicationXML = "application/xml"
)

// acceptableContentTypes 요청 본문에 허용되는 Content-Type 목록
var acceptableContentTypes = []string{
	MediaTypeApplicationJSON,
	MediaTypeApplicationYAML,
}

// yamlMediaTypes 응답을 YAML로 직렬화하게 만드는 미디어 타입 목록
var yamlMediaTypes = []string{
	MediaTypeApplicationYAML,
	MediaTypeApplicationXYAML,
	MediaTypeTextYAML,
}

// ContentDescriptor 요청 헤더에서 추출한 본문 메타데이터입니다.
type ContentDescriptor struct {
	MediaType string // 파라미터가 제거된 Content-Type (예: "application/json")
	Encoding  string // Content-Encoding 토큰 (없으면 빈 문자열)
}

// NewContentDescriptor 요청 헤더로부터 ContentDescriptor를 생성합니다.
func NewContentDescriptor(h http.Header) ContentDescriptor {
	return ContentDescriptor{
		MediaType: baseMediaType(h.Get("Content-Type")),
		Encoding:  strings.TrimSpace(h.Get("Content-Encoding")),
	}
}

// baseMediaType "Application/JSON; charset=utf-8" -> "application/json"
func baseMediaType(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(v); err == nil {
		return mt
	}
	// 파라미터가 손상된 경우에도 타입 부분은 사용합니다.
	mt, _, _ := strings.Cut(v, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// IsAcceptableContentType Content-Type이 허용 목록에 있으면 true를 반환합니다. 대소문자는 구분하지 않습니다.
func IsAcceptableContentType(d ContentDescriptor) bool {
	return containsFold(acceptableContentTypes, baseMediaType(d.MediaType))
}

// IsYAML 미디어 타입이 YAML 계열이면 true를 반환합니다.
func IsYAML(mediaType string) bool {
	return containsFold(yamlMediaTypes, baseMediaType(mediaType))
}

func containsFold(list []string, v string) bool {
	if v == "" {
		return false
	}
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

// Negotiator 요청된 미디어 타입에 맞는 응답 코덱을 선택합니다.
type Negotiator struct {
	registry *codec.Registry
}

// NewNegotiator 레지스트리가 nil이면 기본 레지스트리(JSON, YAML)를 사용합니다.
func NewNegotiator(registry *codec.Registry) *Negotiator {
	if registry == nil {
		registry = codec.NewDefaultRegistry()
	}
	return &Negotiator{registry: registry}
}

// SelectCodec 요청된 미디어 타입이 YAML 계열이면 YAML 코덱을, 그렇지 않으면 JSON 코덱을 반환합니다.
// 이 함수는 실패하지 않습니다.
func (n *Negotiator) SelectCodec(requestedMediaType string) codec.Codec {
	if IsYAML(requestedMediaType) {
		if c, ok := n.registry.Lookup(codec.YAML); ok {
			return c
		}
	}
	return n.registry.Default()
}

// Registry 사용 중인 코덱 레지스트리를 반환합니다.
func (n *Negotiator) Registry() *codec.Registry {
	return n.registry
}

// RequestedMediaType Accept 헤더에서 응답 형식 결정에 사용할 미디어 타입을 고릅니다.
//
// q 값이 큰 순서(같으면 헤더에 나온 순서)로 미디어 범위를 살펴, JSON 또는 YAML 계열인 첫 번째 값을
// 반환합니다. 해당하는 값이 없으면 빈 문자열을 반환하여 JSON 기본값이 사용되게 합니다.
// q=0인 범위는 제외합니다.
func RequestedMediaType(h http.Header) string {
	ranges := parseAccept(h.Values("Accept"))
	for _, r := range ranges {
		if strings.EqualFold(r.mediaType, MediaTypeApplicationJSON) || IsYAML(r.mediaType) {
			return r.mediaType
		}
	}
	return ""
}

type mediaRange struct {
	mediaType string
	q         float64
}

func parseAccept(values []string) []mediaRange {
	var ranges []mediaRange
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			mt, params, _ := strings.Cut(part, ";")
			r := mediaRange{mediaType: strings.ToLower(strings.TrimSpace(mt)), q: 1}
			for _, p := range strings.Split(params, ";") {
				k, val, ok := strings.Cut(strings.TrimSpace(p), "=")
				if ok && strings.EqualFold(strings.TrimSpace(k), "q") {
					if q, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
						r.q = q
					}
				}
			}
			if r.q <= 0 {
				continue
			}

			ranges = append(ranges, r)
		}
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].q > ranges[j].q
	})

	return ranges
}
