package api

import (
	"github.com/labstack/echo/v4"
	_ "github.com/matjazbravc/screen-scraping-server/docs"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/handler/system"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouteOptions 선택적으로 노출되는 전역 엔드포인트 설정
type RouteOptions struct {
	// EnableSwagger /swagger/* 노출 여부
	EnableSwagger bool

	// MetricsGatherer nil이 아니면 /metrics에서 이 Gatherer의 메트릭을 노출합니다.
	MetricsGatherer prometheus.Gatherer
}

// RegisterRoutes 전역 라우트를 등록합니다.
//   - /health, /version
//   - /swagger/* (EnableSwagger)
//   - /metrics (MetricsGatherer)
func RegisterRoutes(e *echo.Echo, h *system.Handler, opts RouteOptions) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)

	if opts.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
			echoSwagger.URL("/swagger/doc.json"),
			echoSwagger.DeepLinking(true),
			echoSwagger.DocExpansion("list"),
		))
	}

	if opts.MetricsGatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.MetricsGatherer, promhttp.HandlerOpts{})))
	}
}
