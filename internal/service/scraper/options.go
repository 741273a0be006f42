package scraper

import (
	"time"
)

const (
	// defaultTimeout 한 번의 FetchAndExtract에 허용되는 기본 시간
	defaultTimeout = 30 * time.Second

	// defaultMaxBodySize 응답 본문의 기본 최대 크기 (10MB)
	defaultMaxBodySize = 10 * 1024 * 1024
)

// Option Scraper 구성을 위한 옵션 함수 타입입니다.
type Option func(*Scraper)

// WithSelector 추출 대상 요소의 선택자를 변경합니다.
func WithSelector(sel Selector) Option {
	return func(s *Scraper) {
		s.selector = sel
	}
}

// WithTimeout FetchAndExtract 한 번에 허용되는 시간을 설정합니다. 0 이하이면 무시됩니다.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Scraper) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithMaxBodySize 응답 본문의 최대 크기를 바이트 단위로 설정합니다. 0 이하이면 무시됩니다.
func WithMaxBodySize(size int64) Option {
	return func(s *Scraper) {
		if size > 0 {
			s.maxBodySize = size
		}
	}
}

// WithMetrics 페치 결과를 기록할 Metrics를 설정합니다.
func WithMetrics(m *Metrics) Option {
	return func(s *Scraper) {
		s.metrics = m
	}
}

// WithNormalizeSpaces 추출된 텍스트의 연속된 공백을 하나로 합치고 앞뒤 공백을 제거합니다.
func WithNormalizeSpaces(enabled bool) Option {
	return func(s *Scraper) {
		s.normalizeSpaces = enabled
	}
}
