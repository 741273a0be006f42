// Package system 헬스체크와 버전 정보 등 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/matjazbravc/screen-scraping-server/internal/config"
	"github.com/matjazbravc/screen-scraping-server/internal/pkg/version"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/constants"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/model/system"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/negotiation"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/response"
	applog "github.com/matjazbravc/screen-scraping-server/pkg/log"
	"github.com/matjazbravc/screen-scraping-server/pkg/strutil"
)

// ConfigReader 설정 값을 키로 조회합니다.
type ConfigReader interface {
	String(key string) string
}

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	cfg     ConfigReader
	builder *response.Builder

	buildInfo version.Info

	serverStartTime time.Time
}

// New Handler 인스턴스를 생성합니다. builder가 nil이면 기본 Builder를 사용합니다.
func New(cfg ConfigReader, builder *response.Builder, buildInfo version.Info) *Handler {
	if cfg == nil {
		panic(constants.PanicMsgConfigReaderRequired)
	}
	if builder == nil {
		builder = response.NewBuilder(nil)
	}

	return &Handler{
		cfg:     cfg,
		builder: builder,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버 가동 시간과 스크래핑 대상 URL 설정 여부를 반환합니다.
// @Description 대상 URL이 설정되지 않았으면 status가 unhealthy입니다.
// @Tags System
// @Produce json
// @Produce yaml
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	target := system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusConfigured,
	}
	if strutil.IsBlank(h.cfg.String(config.KeyURLAddress)) {
		target = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: constants.MsgDepStatusNotConfigured,
		}
	}

	res := h.builder.OK(system.HealthResponse{
		Status:       target.Status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: map[string]system.DependencyStatus{constants.DependencyScrapeTarget: target},
	}, negotiation.RequestedMediaType(c.Request().Header))

	return c.Blob(res.StatusCode, res.MediaType, res.Body)
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 빌드 버전, 커밋, 빌드 날짜와 번호, Go 버전과 플랫폼을 반환합니다.
// @Tags System
// @Produce json
// @Produce yaml
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	res := h.builder.OK(system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		Platform:    h.buildInfo.OS + "/" + h.buildInfo.Arch,
	}, negotiation.RequestedMediaType(c.Request().Header))

	return c.Blob(res.StatusCode, res.MediaType, res.Body)
}
