// Package v1 /api/v1 경로 하위의 엔드포인트를 등록합니다.
//
//   - GET|POST /api/v1/titles  대상 페이지의 제목 목록
//   - GET|POST /api/v1/scrape  /api/v1/titles와 동일
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/v1/handler"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	g := e.Group("/api/v1")

	methods := []string{http.MethodGet, http.MethodPost}
	g.Match(methods, "/titles", h.ScrapeTitlesHandler)
	g.Match(methods, "/scrape", h.ScrapeTitlesHandler)
}
