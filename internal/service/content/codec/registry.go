package codec

// Registry 형식별 코덱을 보관합니다.
// 생성 이후에는 읽기 전용이므로 여러 요청에서 동시에 사용해도 안전합니다.
type Registry struct {
	codecs map[Format]Codec
}

// NewRegistry 주어진 코덱들로 레지스트리를 생성합니다.
// 같은 형식의 코덱이 여러 개이면 마지막 코덱이 사용되며, JSON 코덱이 없으면 기본 JSON 코덱을 추가합니다.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{codecs: make(map[Format]Codec, len(codecs)+1)}
	for _, c := range codecs {
		if c != nil {
			r.codecs[c.Format()] = c
		}
	}
	if _, ok := r.codecs[JSON]; !ok {
		r.codecs[JSON] = NewJSON()
	}

	return r
}

// NewDefaultRegistry JSON, YAML 코덱이 등록된 레지스트리를 생성합니다.
func NewDefaultRegistry() *Registry {
	return NewRegistry(NewJSON(), NewYAML())
}

// Lookup 형식에 해당하는 코덱을 반환합니다.
func (r *Registry) Lookup(f Format) (Codec, bool) {
	c, ok := r.codecs[f]
	return c, ok
}

// Default 기본 코덱(JSON)을 반환합니다.
func (r *Registry) Default() Codec {
	return r.codecs[JSON]
}

// Supports 미디어 타입이 등록된 코덱 중 하나의 대표 미디어 타입이면 true를 반환합니다.
func (r *Registry) Supports(mediaType string) bool {
	for _, c := range r.codecs {
		if c.MediaType() == mediaType {
			return true
		}
	}
	return false
}
