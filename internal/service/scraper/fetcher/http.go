package fetcher

import (
	"net"
	"net/http"
	"time"
)

const (
	// DefaultTimeout 요청 전체(연결부터 본문 수신까지)에 대한 기본 타임아웃
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent 요청에 User-Agent가 없을 때 사용하는 값 (Chrome 120 - Windows)
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// defaultTransport 별도의 Transport가 지정되지 않은 HTTPFetcher들이 공유하는 연결 풀
var defaultTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	TLSHandshakeTimeout: 10 * time.Second,
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 100,
	IdleConnTimeout:     90 * time.Second,
}

// HTTPFetcher 기본 타임아웃, User-Agent 자동 추가, 응답 압축 해제 기능이 내장된 Fetcher 구현체입니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	transport http.RoundTripper
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*HTTPFetcher)(nil)

// Option HTTPFetcher의 설정을 변경하기 위한 함수 타입입니다.
type Option func(*HTTPFetcher)

// WithTimeout 요청 전체에 대한 타임아웃을 설정합니다. 0 이하이면 타임아웃이 비활성화됩니다.
func WithTimeout(timeout time.Duration) Option {
	return func(h *HTTPFetcher) {
		h.client.Timeout = timeout
	}
}

// WithUserAgent 요청에 User-Agent가 없을 때 사용할 값을 설정합니다. 빈 문자열이면 무시됩니다.
func WithUserAgent(ua string) Option {
	return func(h *HTTPFetcher) {
		if ua != "" {
			h.userAgent = ua
		}
	}
}

// WithTransport 실제 네트워크 요청을 수행할 RoundTripper를 지정합니다. (테스트에서 Mock Transport 주입용)
func WithTransport(rt http.RoundTripper) Option {
	return func(h *HTTPFetcher) {
		if rt != nil {
			h.transport = rt
		}
	}
}

// NewHTTPFetcher 새로운 HTTPFetcher 인스턴스를 생성합니다.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	h := &HTTPFetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		transport: defaultTransport,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.client.Transport = &decompressingTransport{base: h.transport}

	return h
}

// Do HTTP 요청을 실행합니다.
// 요청 헤더에 User-Agent가 없으면 원본 요청을 복제하여 기본값을 설정합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", h.userAgent)
	}

	return h.client.Do(req)
}
