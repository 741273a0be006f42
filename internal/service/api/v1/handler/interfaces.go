package handler

import (
	"context"

	"github.com/matjazbravc/screen-scraping-server/internal/service/content/response"
)

// Scraper 대상 페이지에서 제목 목록을 추출합니다.
type Scraper interface {
	FetchAndExtract(ctx context.Context, url string) ([]string, error)
}

// ResponseBuilder 요청된 미디어 타입으로 직렬화된 응답을 생성합니다.
type ResponseBuilder interface {
	OK(value any, requestedMediaType string) response.Response
	BadRequest(message, requestedMediaType string) response.Response
	UnsupportedMediaType(message, requestedMediaType string) response.Response
	InternalServerError(message, description, requestedMediaType string) response.Response
}

// ConfigReader 설정 값을 키로 조회합니다.
type ConfigReader interface {
	String(key string) string
}

// 컴파일 타임에 구현 여부를 확인합니다.
var _ ResponseBuilder = (*response.Builder)(nil)
