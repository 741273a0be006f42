// Package fetcher 스크래핑 대상 페이지를 가져오는 HTTP 클라이언트를 제공합니다.
//
// HTTPFetcher는 기본 User-Agent 주입, 전체 요청 타임아웃, gzip/deflate 응답의 자동 압축 해제를
// 담당하며, 상태 코드 검사와 본문 해석은 호출자(scraper 패키지)의 몫입니다.
package fetcher

import (
	"context"
	"io"
	"net/http"
)

// component 로깅용 컴포넌트 이름
const component = "scraper.fetcher"

// maxDrainBytes 커넥션 재사용을 위해 Body를 비울 때 읽을 최대 바이트 수 (64KB)
const maxDrainBytes = 64 * 1024

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
//
// 반환된 응답의 Body는 호출자가 닫아야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get 지정된 URL로 HTTP GET 요청을 전송합니다.
//
// 요청이 실패했는데 응답 객체가 함께 반환된 경우 Body를 비우고 닫은 뒤 nil 응답을 반환합니다.
// 반환되는 에러에 포함된 URL은 RedactRawURL로 마스킹됩니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, redactError(err)
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			DrainAndCloseBody(resp.Body)
		}

		return nil, redactError(err)
	}

	return resp, nil
}

// DrainAndCloseBody 커넥션 재사용을 위해 Body를 최대 64KB까지 읽어서 버린 뒤 닫습니다.
func DrainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
}
