package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/constants"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/httputil"
	appmiddleware "github.com/matjazbravc/screen-scraping-server/internal/service/api/middleware"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/response"
	applog "github.com/matjazbravc/screen-scraping-server/pkg/log"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정
type HTTPServerConfig struct {
	// Debug echo 디버그 모드
	Debug bool

	// AllowOrigins CORS 허용 Origin 목록
	AllowOrigins []string

	// RequestTimeout 요청 처리 최대 시간 (0이면 60초)
	RequestTimeout time.Duration

	// BodyLimit 요청 본문 최대 크기 (예: "2M", 비어 있으면 2M)
	BodyLimit string

	// Builder 에러 응답 생성에 사용합니다. nil이면 기본 Builder를 사용합니다.
	Builder *response.Builder
}

// NewHTTPServer 미들웨어 체인이 구성된 echo 인스턴스를 생성합니다. 라우트는 포함하지 않습니다.
//
// 미들웨어 적용 순서:
//  1. PanicRecovery: 이후 미들웨어에서 발생한 패닉까지 복구
//  2. RequestID: 로그에 request_id를 남기기 위해 로깅보다 먼저
//  3. Server 헤더 제거
//  4. HTTPLogger: 413/503 응답도 기록되도록 BodyLimit/Timeout보다 먼저
//  5. BodyLimit (초과 시 413)
//  6. ContextTimeout (초과 시 503)
//  7. CORS
//  8. Secure 헤더
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.NewLogger(applog.StandardLogger())
	e.HTTPErrorHandler = httputil.NewErrorHandler(cfg.Builder)

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	bodyLimit := cfg.BodyLimit
	if bodyLimit == "" {
		bodyLimit = constants.DefaultBodyLimit
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.Secure())

	return e
}
