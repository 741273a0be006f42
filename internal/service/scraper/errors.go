package scraper

import (
	"context"
	"errors"
	"net"

	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
)

var (
	// ErrEmptyURL 스크래핑 대상 URL이 비어 있을 때 반환됩니다.
	ErrEmptyURL = apperrors.New(apperrors.InvalidInput, "스크래핑 대상 URL이 비어 있습니다")
)

// classifyTransportError 요청 전송 단계의 에러를 timeout/canceled/connection 중 하나로 분류합니다.
func classifyTransportError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return resultTimeout
	}
	if errors.Is(err, context.Canceled) {
		return resultCanceled
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return resultTimeout
	}

	return resultConnection
}

func newErrFetchFailed(err error, target string) error {
	return apperrors.Wrapf(err, apperrors.FetchFailed, "페이지(%s)를 가져오지 못했습니다", target)
}

func newErrReadBody(err error, target string) error {
	return apperrors.Wrapf(err, apperrors.FetchFailed, "페이지(%s)의 응답 본문을 읽는 중 에러가 발생했습니다", target)
}

func newErrBodyTooLarge(limit int64, target string) error {
	return apperrors.Newf(apperrors.FetchFailed, "페이지(%s)의 응답 본문이 허용된 크기(%d 바이트)를 초과합니다", target, limit)
}

func newErrCharset(err error, target string) error {
	return apperrors.Wrapf(err, apperrors.ParsingFailed, "페이지(%s)의 인코딩 변환이 실패하였습니다", target)
}

func newErrParseHTML(err error, target string) error {
	return apperrors.Wrapf(err, apperrors.ParsingFailed, "불러온 페이지(%s)의 데이터 파싱이 실패하였습니다", target)
}
