// Package compression Content-Encoding 토큰에 따라 페이로드를 압축 해제합니다.
//
// 지원하는 인코딩은 gzip(x-gzip 포함)과 deflate이며, 토큰이 없거나 identity이면
// 원본을 그대로 반환합니다. 그 외의 토큰은 UnsupportedEncoding 에러가 되어 HTTP 415로 응답됩니다.
//
// deflate는 RFC 9110에 따라 zlib 형식을 기본으로 하지만, zlib 헤더 없이 원시 DEFLATE
// 스트림을 보내는 구현도 많기 때문에 첫 2바이트로 형식을 판별하여 둘 다 처리합니다.
package compression

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
)

// 지원하는 Content-Encoding 토큰
const (
	Gzip     = "gzip"
	Deflate  = "deflate"
	Identity = "identity"

	xGzip = "x-gzip"
)

// MaxDecompressedSize Decompress가 메모리에 풀어낼 수 있는 최대 크기입니다.
const MaxDecompressedSize = 32 << 20

func normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// IsSupported 압축 해제가 가능한 토큰이면 true를 반환합니다. (토큰 없음과 identity는 false)
func IsSupported(token string) bool {
	switch normalize(token) {
	case Gzip, xGzip, Deflate:
		return true
	default:
		return false
	}
}

func isNoop(token string) bool {
	t := normalize(token)
	return t == "" || t == Identity
}

// Decompress body를 encodingToken에 따라 압축 해제한 새 바이트 슬라이스를 반환합니다.
// 원본 body는 수정하지 않으며, 토큰이 없으면 body를 그대로 반환합니다.
func Decompress(body []byte, encodingToken string) ([]byte, error) {
	if isNoop(encodingToken) {
		return body, nil
	}

	r, err := NewReader(bytes.NewReader(body), encodingToken)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, MaxDecompressedSize+1))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("압축 해제에 실패했습니다 (Content-Encoding: %s)", encodingToken))
	}
	if len(out) > MaxDecompressedSize {
		return nil, apperrors.New(apperrors.InvalidInput, fmt.Sprintf("압축 해제된 데이터가 허용된 크기(%d 바이트)를 초과합니다", MaxDecompressedSize))
	}

	return out, nil
}

// NewReader r을 encodingToken에 따라 압축 해제하는 Reader를 반환합니다.
// 토큰이 없으면 r을 그대로 감싼 Reader를 반환합니다.
func NewReader(r io.Reader, encodingToken string) (io.ReadCloser, error) {
	switch normalize(encodingToken) {
	case "", Identity:
		return io.NopCloser(r), nil

	case Gzip, xGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, "gzip 스트림 헤더가 올바르지 않습니다")
		}
		return zr, nil

	case Deflate:
		br := bufio.NewReader(r)
		header, err := br.Peek(2)
		if err == nil && isZlibHeader(header) {
			zr, err := zlib.NewReader(br)
			if err != nil {
				return nil, apperrors.Wrap(err, apperrors.InvalidInput, "zlib 스트림 헤더가 올바르지 않습니다")
			}
			return zr, nil
		}
		return flate.NewReader(br), nil

	default:
		return nil, apperrors.New(apperrors.UnsupportedEncoding, fmt.Sprintf("지원하지 않는 Content-Encoding입니다: '%s'", encodingToken))
	}
}

// isZlibHeader RFC 1950 헤더(CM=8, FCHECK)를 만족하는지 확인합니다.
func isZlibHeader(h []byte) bool {
	return h[0]&0x0f == 8 && (uint16(h[0])<<8|uint16(h[1]))%31 == 0
}

// Compress body를 encodingToken에 따라 압축합니다. deflate는 zlib 형식으로 압축합니다.
func Compress(body []byte, encodingToken string) ([]byte, error) {
	if isNoop(encodingToken) {
		return body, nil
	}

	var buf bytes.Buffer
	var w io.WriteCloser

	switch normalize(encodingToken) {
	case Gzip, xGzip:
		w = gzip.NewWriter(&buf)
	case Deflate:
		w = zlib.NewWriter(&buf)
	default:
		return nil, apperrors.New(apperrors.UnsupportedEncoding, fmt.Sprintf("지원하지 않는 Content-Encoding입니다: '%s'", encodingToken))
	}

	if _, err := w.Write(body); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "압축에 실패했습니다")
	}
	if err := w.Close(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "압축 스트림 종료에 실패했습니다")
	}

	return buf.Bytes(), nil
}
