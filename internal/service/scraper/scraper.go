// Package scraper 외부 웹 페이지를 가져와 선택자에 일치하는 요소들의 텍스트를 추출합니다.
package scraper

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/matjazbravc/screen-scraping-server/internal/service/scraper/fetcher"
	applog "github.com/matjazbravc/screen-scraping-server/pkg/log"
	"github.com/matjazbravc/screen-scraping-server/pkg/strutil"
	"golang.org/x/net/html/charset"
)

// component 로깅용 컴포넌트 이름
const component = "scraper"

// Scraper 대상 페이지에서 제목 목록을 추출합니다.
// 생성 이후에는 상태를 변경하지 않으므로 여러 요청에서 동시에 사용해도 안전합니다.
type Scraper struct {
	fetcher fetcher.Fetcher

	selector        Selector
	timeout         time.Duration
	maxBodySize     int64
	normalizeSpaces bool

	metrics *Metrics
}

// New 새로운 Scraper를 생성합니다. f가 nil이면 패닉이 발생합니다.
func New(f fetcher.Fetcher, opts ...Option) *Scraper {
	if f == nil {
		panic("Fetcher는 필수입니다")
	}

	s := &Scraper{
		fetcher:     f,
		selector:    DefaultSelector,
		timeout:     defaultTimeout,
		maxBodySize: defaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Selector 사용 중인 선택자를 반환합니다.
func (s *Scraper) Selector() Selector {
	return s.selector
}

// FetchAndExtract url의 문서를 가져와 선택자에 일치하는 모든 요소의 텍스트를 문서 순서대로 반환합니다.
//
// 일치하는 요소가 없으면 비어 있는(nil이 아닌) 슬라이스를 반환합니다.
// 네트워크 오류, 타임아웃, 2xx가 아닌 응답, 허용 크기를 넘는 본문은 FetchFailed,
// 문서를 해석할 수 없으면 ParsingFailed 에러가 됩니다.
func (s *Scraper) FetchAndExtract(ctx context.Context, url string) (titles []string, err error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}

	matcher, err := s.selector.compile()
	if err != nil {
		return nil, err
	}

	// 에러와 로그에는 인증 정보가 마스킹된 주소만 남깁니다.
	target := fetcher.RedactRawURL(url)

	logger := applog.WithComponentAndFields(component, applog.Fields{
		"url":      target,
		"selector": s.selector.String(),
	})
	logger.Info("스크래핑을 시작합니다")

	start := time.Now()
	result := resultSuccess
	defer func() {
		elapsed := time.Since(start)
		s.metrics.observeFetch(result, elapsed)

		if err != nil {
			s.metrics.incError(err)
			logger.WithFields(applog.Fields{
				"result":     result,
				"elapsed_ms": elapsed.Milliseconds(),
				"error":      err,
			}).Warn("스크래핑이 실패했습니다")
			return
		}

		s.metrics.addTitles(len(titles))
		logger.WithFields(applog.Fields{
			"count":      len(titles),
			"elapsed_ms": elapsed.Milliseconds(),
		}).Info("스크래핑이 완료되었습니다")
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, contentType, result, err := s.fetch(ctx, url, target)
	if err != nil {
		return nil, err
	}

	titles, err = s.extract(body, contentType, target, matcher)
	if err != nil {
		result = resultParse
		return nil, err
	}

	return titles, nil
}

// fetch 응답 본문 전체와 Content-Type을 반환합니다. 실패 시 결과 레이블도 함께 반환합니다.
// target은 에러 메시지에 사용할 마스킹된 주소입니다.
func (s *Scraper) fetch(ctx context.Context, url, target string) ([]byte, string, string, error) {
	resp, err := fetcher.Get(ctx, s.fetcher, url)
	if err != nil {
		return nil, "", classifyTransportError(err), newErrFetchFailed(err, target)
	}
	defer resp.Body.Close()

	if err := fetcher.CheckResponseStatus(resp); err != nil {
		return nil, "", resultStatus, err
	}

	if resp.ContentLength > s.maxBodySize {
		return nil, "", resultBody, newErrBodyTooLarge(s.maxBodySize, target)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBodySize+1))
	if err != nil {
		if ctx.Err() != nil {
			return nil, "", classifyTransportError(ctx.Err()), newErrReadBody(err, target)
		}
		return nil, "", resultBody, newErrReadBody(err, target)
	}
	if int64(len(data)) > s.maxBodySize {
		return nil, "", resultBody, newErrBodyTooLarge(s.maxBodySize, target)
	}

	return data, resp.Header.Get("Content-Type"), resultSuccess, nil
}

func (s *Scraper) extract(body []byte, contentType, target string, matcher cascadia.Matcher) ([]string, error) {
	// Content-Type 헤더와 meta 태그를 기반으로 인코딩을 UTF-8로 변환
	utf8Reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, newErrCharset(err, target)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, newErrParseHTML(err, target)
	}

	nodes := cascadia.QueryAll(doc.Get(0), matcher)

	titles := make([]string, 0, len(nodes))
	doc.FindNodes(nodes...).Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		if s.normalizeSpaces {
			text = strutil.NormalizeSpaces(text)
		}
		titles = append(titles, text)
	})

	return titles, nil
}
