package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
	"github.com/matjazbravc/screen-scraping-server/pkg/strutil"
)

// Request 핸들러가 처리하는 요청의 스냅샷입니다.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// HasPayload 본문이 공백이 아닌 내용을 포함하면 true를 반환합니다.
// 압축된 본문은 바이너리이므로 길이만으로 판단합니다.
func (r Request) HasPayload() bool {
	if len(r.Body) == 0 {
		return false
	}
	if r.Header.Get(echo.HeaderContentEncoding) != "" {
		return true
	}
	return !strutil.IsBlank(string(r.Body))
}

// NewRequest echo 컨텍스트에서 Request를 생성합니다. 본문은 모두 읽어 메모리에 보관합니다.
func NewRequest(c echo.Context) (Request, error) {
	req := c.Request()

	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return Request{}, apperrors.Wrap(err, apperrors.InvalidInput, "요청 본문을 읽을 수 없습니다")
		}
		body = b
	}

	return Request{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
		Body:   body,
	}, nil
}
