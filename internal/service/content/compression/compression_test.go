package compression

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/flate"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ===== Test Helpers =====

func rawDeflate(t *testing.T, body []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = w.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// ===== Decompress =====

func TestDecompress_RoundTrip(t *testing.T) {
	t.Parallel()

	bodies := map[string][]byte{
		"빈 본문":   {},
		"JSON":   []byte(`{"name":"screen-scraping"}`),
		"한글":     []byte("안녕하세요, 스크래핑 서버입니다."),
		"반복 데이터": bytes.Repeat([]byte("title "), 10000),
	}

	for _, token := range []string{Gzip, Deflate, "x-gzip", "GZIP", " Deflate "} {
		for name, body := range bodies {
			t.Run(token+"/"+name, func(t *testing.T) {
				t.Parallel()

				compressed, err := Compress(body, token)
				require.NoError(t, err)

				decompressed, err := Decompress(compressed, token)
				require.NoError(t, err)
				assert.Equal(t, len(body), len(decompressed))
				assert.True(t, bytes.Equal(body, decompressed))
			})
		}
	}
}

func TestDecompress_RawDeflate(t *testing.T) {
	t.Parallel()

	body := []byte("raw deflate stream without zlib header")

	out, err := Decompress(rawDeflate(t, body), Deflate)
	require.NoError(t, err)
	assert.Equal(t, body, out)
}

func TestDecompress_NoEncoding(t *testing.T) {
	t.Parallel()

	body := []byte("plain")

	for _, token := range []string{"", "   ", "identity", "IDENTITY"} {
		out, err := Decompress(body, token)
		require.NoError(t, err)
		assert.Equal(t, body, out)
		assert.Same(t, &body[0], &out[0], "토큰이 없으면 원본 슬라이스를 그대로 반환해야 합니다")
	}
}

func TestDecompress_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	compressed, err := Compress([]byte("immutable"), Gzip)
	require.NoError(t, err)
	snapshot := append([]byte(nil), compressed...)

	_, err = Decompress(compressed, Gzip)
	require.NoError(t, err)
	assert.Equal(t, snapshot, compressed)
}

func TestDecompress_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    []byte
		token   string
		errType apperrors.ErrorType
	}{
		{"실패: 지원하지 않는 토큰 br", []byte("x"), "br", apperrors.UnsupportedEncoding},
		{"실패: 지원하지 않는 토큰 compress", []byte("x"), "compress", apperrors.UnsupportedEncoding},
		{"실패: 손상된 gzip 헤더", []byte("not gzip at all"), Gzip, apperrors.InvalidInput},
		{"실패: 손상된 deflate", []byte{0xff, 0xff, 0xff, 0xff}, Deflate, apperrors.InvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := Decompress(tt.body, tt.token)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, apperrors.Is(err, tt.errType), "에러 타입: %v", err)
		})
	}
}

func TestDecompress_TooLarge(t *testing.T) {
	t.Parallel()

	compressed, err := Compress(bytes.Repeat([]byte{0}, MaxDecompressedSize+1), Gzip)
	require.NoError(t, err)

	_, err = Decompress(compressed, Gzip)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.Contains(t, err.Error(), "초과")
}

// ===== NewReader / Compress / IsSupported =====

func TestNewReader_Streaming(t *testing.T) {
	t.Parallel()

	compressed, err := Compress([]byte("<html><td class=\"title\">A</td></html>"), Deflate)
	require.NoError(t, err)

	r, err := NewReader(bytes.NewReader(compressed), Deflate)
	require.NoError(t, err)
	defer r.Close()

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), "title"))
}

func TestCompress_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := Compress([]byte("x"), "zstd")
	assert.True(t, apperrors.Is(err, apperrors.UnsupportedEncoding))
}

func TestIsSupported(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSupported("gzip"))
	assert.True(t, IsSupported("X-GZIP"))
	assert.True(t, IsSupported("deflate"))
	assert.False(t, IsSupported(""))
	assert.False(t, IsSupported("identity"))
	assert.False(t, IsSupported("br"))
}
