// Package api 스크래핑 HTTP API 서버의 생명주기와 라우팅을 관리합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/matjazbravc/screen-scraping-server/internal/config"
	"github.com/matjazbravc/screen-scraping-server/internal/pkg/version"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/constants"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/handler/system"
	v1 "github.com/matjazbravc/screen-scraping-server/internal/service/api/v1"
	v1handler "github.com/matjazbravc/screen-scraping-server/internal/service/api/v1/handler"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/response"
	applog "github.com/matjazbravc/screen-scraping-server/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
)

// Service API 서버 서비스입니다.
//
// Start로 시작하면 별도의 고루틴에서 echo 서버를 구동하고, serviceStopCtx가 취소되면
// 최대 5초 동안 처리 중인 요청을 마친 뒤 종료합니다.
type Service struct {
	appConfig *config.AppConfig

	scraper v1handler.Scraper
	builder *response.Builder

	metricsGatherer prometheus.Gatherer

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
// metricsGatherer가 nil이면 api.enable_metrics 설정과 관계없이 /metrics를 등록하지 않습니다.
func NewService(appConfig *config.AppConfig, s v1handler.Scraper, b *response.Builder, metricsGatherer prometheus.Gatherer, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if s == nil {
		panic(constants.PanicMsgScraperRequired)
	}
	if b == nil {
		b = response.NewBuilder(nil)
	}

	return &Service{
		appConfig: appConfig,

		scraper: s,
		builder: b,

		metricsGatherer: metricsGatherer,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다. 서버는 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러, 미들웨어, 라우트가 구성된 echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.New(s.appConfig, s.builder, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.scraper, s.builder, s.appConfig)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:          s.appConfig.Debug,
		AllowOrigins:   s.appConfig.API.CORS.AllowOrigins,
		RequestTimeout: s.appConfig.API.RequestTimeoutDuration(),
		BodyLimit:      s.appConfig.API.BodyLimit,
		Builder:        s.builder,
	})

	var gatherer prometheus.Gatherer
	if s.appConfig.API.EnableMetrics {
		gatherer = s.metricsGatherer
	}

	RegisterRoutes(e, systemHandler, RouteOptions{
		EnableSwagger:   s.appConfig.API.EnableSwagger,
		MetricsGatherer: gatherer,
	})
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer 서버가 종료될 때까지 블로킹되며, 종료되면 done을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.API.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버 조기 종료를 기다린 뒤 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// isRunning 서비스 실행 여부
func (s *Service) isRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}
