package fetcher

import (
	"io"
	"net/http"

	"github.com/matjazbravc/screen-scraping-server/internal/service/content/compression"
	applog "github.com/matjazbravc/screen-scraping-server/pkg/log"
)

// acceptEncoding 요청에 Accept-Encoding이 없을 때 광고하는 값
const acceptEncoding = "gzip, deflate"

// decompressingTransport gzip과 deflate 응답을 모두 투명하게 압축 해제하는 RoundTripper입니다.
//
// http.Transport의 자동 압축 해제는 gzip만 처리하므로, Accept-Encoding을 직접 설정하고
// compression 패키지로 본문을 풀어냅니다. 압축 해제된 응답에서는 Content-Encoding과
// Content-Length 헤더가 제거되고 Uncompressed가 true로 설정됩니다.
type decompressingTransport struct {
	base http.RoundTripper
}

func (t *decompressingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	encoding := resp.Header.Get("Content-Encoding")
	if encoding == "" || resp.Body == nil || req.Method == http.MethodHead {
		return resp, nil
	}

	r, err := compression.NewReader(resp.Body, encoding)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"url":              req.URL.Redacted(),
			"content_encoding": encoding,
			"error":            err,
		}).Warn("응답 본문의 압축 해제를 시작하지 못했습니다")

		DrainAndCloseBody(resp.Body)
		return nil, err
	}

	resp.Body = &decompressedBody{Reader: r, decoder: r, raw: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true

	return resp, nil
}

// decompressedBody 압축 해제 Reader와 원본 Body를 함께 닫습니다.
type decompressedBody struct {
	io.Reader
	decoder io.Closer
	raw     io.Closer
}

func (b *decompressedBody) Close() error {
	decErr := b.decoder.Close()
	if err := b.raw.Close(); err != nil {
		return err
	}
	return decErr
}
