package fetcher

import (
	"net/http"
	"strconv"

	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
)

// CheckResponseStatus 2xx가 아닌 응답을 FetchFailed 에러로 변환합니다.
func CheckResponseStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.Request != nil && resp.Request.URL != nil {
		return apperrors.Newf(apperrors.FetchFailed, "HTTP 요청이 실패했습니다. 상태 코드: %s (%s)", statusText(resp), RedactURL(resp.Request.URL))
	}
	return apperrors.Newf(apperrors.FetchFailed, "HTTP 요청이 실패했습니다. 상태 코드: %s", statusText(resp))
}

func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return strconv.Itoa(resp.StatusCode) + " " + http.StatusText(resp.StatusCode)
}
