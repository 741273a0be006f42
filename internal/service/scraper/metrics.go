package scraper

import (
	"time"

	"github.com/iancoleman/strcase"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// 페치 결과 레이블 값
const (
	resultSuccess    = "success"
	resultTimeout    = "timeout"
	resultCanceled   = "canceled"
	resultConnection = "connection"
	resultStatus     = "status"
	resultBody       = "body"
	resultParse      = "parse"
)

// Metrics 스크래퍼의 Prometheus 수집기 묶음입니다. nil이어도 모든 메서드를 안전하게 호출할 수 있습니다.
type Metrics struct {
	FetchTotal           *prometheus.CounterVec
	FetchErrorsTotal     *prometheus.CounterVec
	FetchDuration        prometheus.Histogram
	TitlesExtractedTotal prometheus.Counter
}

// NewMetrics 수집기를 생성하여 reg에 등록합니다. reg가 nil이면 등록하지 않습니다.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "screen_scraping_fetch_total",
				Help: "Total number of scrape fetches by result.",
			},
			[]string{"result"},
		),
		FetchErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "screen_scraping_fetch_errors_total",
				Help: "Total number of failed scrapes by error type.",
			},
			[]string{"error_type"},
		),
		FetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "screen_scraping_fetch_duration_seconds",
				Help:    "Latency of a complete fetch-and-extract operation.",
				Buckets: prometheus.DefBuckets,
			},
		),
		TitlesExtractedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "screen_scraping_titles_extracted_total",
				Help: "Total number of titles extracted from scraped pages.",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.FetchTotal, m.FetchErrorsTotal, m.FetchDuration, m.TitlesExtractedTotal)
	}

	return m
}

func (m *Metrics) observeFetch(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.FetchTotal.WithLabelValues(result).Inc()
	m.FetchDuration.Observe(d.Seconds())
}

func (m *Metrics) incError(err error) {
	if m == nil {
		return
	}
	m.FetchErrorsTotal.WithLabelValues(errorTypeLabel(err)).Inc()
}

func (m *Metrics) addTitles(n int) {
	if m == nil {
		return
	}
	m.TitlesExtractedTotal.Add(float64(n))
}

// errorTypeLabel FetchFailed -> "fetch_failed"
func errorTypeLabel(err error) string {
	return strcase.ToSnake(apperrors.TypeOf(err).String())
}
