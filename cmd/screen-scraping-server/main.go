package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/matjazbravc/screen-scraping-server/internal/config"
	"github.com/matjazbravc/screen-scraping-server/internal/pkg/version"
	"github.com/matjazbravc/screen-scraping-server/internal/service"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/negotiation"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/response"
	"github.com/matjazbravc/screen-scraping-server/internal/service/scraper"
	"github.com/matjazbravc/screen-scraping-server/internal/service/scraper/fetcher"
	applog "github.com/matjazbravc/screen-scraping-server/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Screen Scraping Server API
// @version 1.0.0
// @description 설정된 웹 페이지에서 제목 목록을 추출하여 JSON 또는 YAML로 반환하는 REST API입니다.
// @description
// @description ## 응답 형식
// @description - Accept: application/json (기본) 또는 application/yaml, application/x-yaml, text/yaml
// @description - 실패 응답은 status_code, message, description 필드를 가진 ErrorPayload입니다.
// @description
// @description ## 요청 본문
// @description 본문은 필수가 아니며, 보낼 경우 Content-Type은 application/json 또는 application/yaml,
// @description Content-Encoding은 gzip 또는 deflate만 허용됩니다.

// @contact.name Matjaz Bravc
// @contact.url https://github.com/matjazbravc

// @license.name MIT

// @BasePath /

const banner = `
  ____                                ____                       _
 / ___|  ___ _ __ ___  ___ _ __      / ___|  ___ _ __ __ _ _ __ (_)_ __   __ _
 \___ \ / __| '__/ _ \/ _ \ '_ \     \___ \ / __| '__/ _` + "`" + ` | '_ \| | '_ \ / _` + "`" + ` |
  ___) | (__| | |  __/  __/ | | |     ___) | (__| | | (_| | |_) | | | | | (_| |
 |____/ \___|_|  \___|\___|_| |_|    |____/ \___|_|  \__,_| .__/|_|_| |_|\__, |
                                                          |_|            |___/ %s
--------------------------------------------------------------------------------
`

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행합니다)
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(newLogOptions(appConfig))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", newStartupFields(appConfig, buildInfo)).Info("서버 초기화 시작")

	if appConfig.URL.Address == "" {
		applog.WithComponent("main").Warn("스크래핑 대상 URL(url.address)이 설정되지 않았습니다. 스크래핑 요청은 400으로 응답합니다")
	}

	// 3. 서비스 구성
	registry := newMetricsRegistry()
	services := []service.Service{newAPIService(appConfig, registry, buildInfo)}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			appLogCloser.Close()
			os.Exit(1)
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호를 수신했습니다")
	cancel()
	serviceStopWG.Wait()
}

// newStartupFields 시작 로그에 남길 빌드 정보와 설정 요약을 구성합니다. 대상 URL의 인증 정보는 마스킹됩니다.
func newStartupFields(cfg *config.AppConfig, buildInfo version.Info) applog.Fields {
	fields := applog.Fields(buildInfo.ToMap())
	fields["config_file"] = cfg.Source()
	fields["target"] = fetcher.RedactRawURL(cfg.URL.Address)
	fields["env"] = map[bool]string{true: "development", false: "production"}[cfg.Debug]

	return fields
}

// newLogOptions 실행 모드에 맞는 기본 옵션에 log 설정을 덮어씁니다.
func newLogOptions(cfg *config.AppConfig) applog.Options {
	var opts applog.Options
	if cfg.Debug {
		opts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		opts = applog.NewProductionOptions(config.AppName)
	}

	opts.Dir = cfg.Log.Dir
	opts.MaxAge = cfg.Log.MaxAge
	opts.EnableConsoleLog = cfg.Log.EnableConsole

	return opts
}

// newMetricsRegistry 스크래퍼 메트릭과 /metrics가 공유하는 레지스트리를 생성합니다.
func newMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// newScraper 설정으로부터 Fetcher와 Scraper를 구성합니다.
func newScraper(cfg *config.AppConfig, reg prometheus.Registerer) *scraper.Scraper {
	f := fetcher.NewHTTPFetcher(
		fetcher.WithTimeout(cfg.Scraper.TimeoutDuration()),
		fetcher.WithUserAgent(cfg.Scraper.UserAgent),
	)

	return scraper.New(f,
		scraper.WithSelector(scraper.Selector{
			Tag:           cfg.Scraper.Selector.Tag,
			ClassContains: cfg.Scraper.Selector.ClassContains,
		}),
		scraper.WithTimeout(cfg.Scraper.TimeoutDuration()),
		scraper.WithMaxBodySize(cfg.Scraper.MaxBodySize),
		scraper.WithNormalizeSpaces(cfg.Scraper.NormalizeSpaces),
		scraper.WithMetrics(scraper.NewMetrics(reg)),
	)
}

// newAPIService API 서비스와 그 의존성을 구성합니다.
func newAPIService(cfg *config.AppConfig, reg *prometheus.Registry, buildInfo version.Info) *api.Service {
	builder := response.NewBuilder(negotiation.NewNegotiator(nil))

	return api.NewService(cfg, newScraper(cfg, reg), builder, reg, buildInfo)
}
