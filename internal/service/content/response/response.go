// Package response 핸들러가 반환하는 HTTP 응답(상태 코드, 미디어 타입, 본문)을 생성합니다.
//
// 본문은 협상된 코덱으로 미리 직렬화되므로 Response를 전송하는 쪽은 추가 인코딩 없이
// 바이트를 그대로 기록하기만 하면 됩니다.
package response

import (
	"net/http"

	"github.com/matjazbravc/screen-scraping-server/internal/service/content/codec"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/negotiation"
	applog "github.com/matjazbravc/screen-scraping-server/pkg/log"
)

const component = "content.response"

// fallbackBody 오류 페이로드조차 인코딩하지 못한 경우 사용하는 고정 본문
var fallbackBody = []byte(`{"status_code":500,"message":"응답을 생성하는 중 에러가 발생했습니다"}`)

// Response 완전히 직렬화된 HTTP 응답입니다.
type Response struct {
	StatusCode int
	MediaType  string
	Body       []byte
}

// ErrorPayload 실패 응답의 본문입니다.
type ErrorPayload struct {
	// StatusCode HTTP 상태 코드
	StatusCode int `json:"status_code" yaml:"status_code" example:"400"`

	// Message 에러 메시지
	Message string `json:"message" yaml:"message" example:"스크래핑 대상 URL이 설정되지 않았습니다"`

	// Description 에러 상세 설명 (선택)
	Description string `json:"description,omitempty" yaml:"description,omitempty" example:"ConfigMissing"`
}

// Builder 요청된 미디어 타입에 맞는 코덱으로 Response를 생성합니다.
// 상태를 변경하지 않으므로 여러 요청에서 동시에 사용해도 안전합니다.
type Builder struct {
	negotiator *negotiation.Negotiator
}

// NewBuilder Negotiator가 nil이면 기본 Negotiator를 사용합니다.
func NewBuilder(n *negotiation.Negotiator) *Builder {
	if n == nil {
		n = negotiation.NewNegotiator(nil)
	}
	return &Builder{negotiator: n}
}

// Build value를 협상된 코덱으로 직렬화하여 Response를 생성합니다.
//
// 직렬화에 실패하면 실패 내용을 로그로 남기고 500 JSON ErrorPayload를 반환합니다.
func (b *Builder) Build(status int, value any, requestedMediaType string) Response {
	c := b.negotiator.SelectCodec(requestedMediaType)

	body, err := c.Encode(value)
	if err == nil {
		return Response{StatusCode: status, MediaType: c.MediaType(), Body: body}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"status_code": status,
		"media_type":  c.MediaType(),
		"error":       err,
	}).Error("응답 본문 인코딩에 실패했습니다")

	return b.encodingFailure()
}

func (b *Builder) encodingFailure() Response {
	jsonCodec := b.negotiator.Registry().Default()

	body, err := jsonCodec.Encode(ErrorPayload{
		StatusCode: http.StatusInternalServerError,
		Message:    "응답을 생성하는 중 에러가 발생했습니다",
	})
	if err != nil {
		body = fallbackBody
	}

	return Response{
		StatusCode: http.StatusInternalServerError,
		MediaType:  codec.MediaTypeJSON,
		Body:       body,
	}
}

// OK 200 OK
func (b *Builder) OK(value any, requestedMediaType string) Response {
	return b.Build(http.StatusOK, value, requestedMediaType)
}

// BadRequest 400 Bad Request. message로 ErrorPayload를 구성합니다.
func (b *Builder) BadRequest(message, requestedMediaType string) Response {
	return b.BadRequestValue(newErrorPayload(http.StatusBadRequest, message, ""), requestedMediaType)
}

// BadRequestValue 호출자가 구성한 값을 본문으로 하는 400 응답
func (b *Builder) BadRequestValue(value any, requestedMediaType string) Response {
	return b.Build(http.StatusBadRequest, value, requestedMediaType)
}

// NotFound 404 Not Found. message로 ErrorPayload를 구성합니다.
func (b *Builder) NotFound(message, requestedMediaType string) Response {
	return b.NotFoundValue(newErrorPayload(http.StatusNotFound, message, ""), requestedMediaType)
}

// NotFoundValue 호출자가 구성한 값을 본문으로 하는 404 응답
func (b *Builder) NotFoundValue(value any, requestedMediaType string) Response {
	return b.Build(http.StatusNotFound, value, requestedMediaType)
}

// UnsupportedMediaType 415 Unsupported Media Type. message로 ErrorPayload를 구성합니다.
func (b *Builder) UnsupportedMediaType(message, requestedMediaType string) Response {
	return b.UnsupportedMediaTypeValue(newErrorPayload(http.StatusUnsupportedMediaType, message, ""), requestedMediaType)
}

// UnsupportedMediaTypeValue 호출자가 구성한 값을 본문으로 하는 415 응답
func (b *Builder) UnsupportedMediaTypeValue(value any, requestedMediaType string) Response {
	return b.Build(http.StatusUnsupportedMediaType, value, requestedMediaType)
}

// InternalServerError 500 Internal Server Error
func (b *Builder) InternalServerError(message, description, requestedMediaType string) Response {
	return b.Error(http.StatusInternalServerError, message, description, requestedMediaType)
}

// Error 임의의 상태 코드로 ErrorPayload 응답을 생성합니다.
func (b *Builder) Error(status int, message, description, requestedMediaType string) Response {
	return b.Build(status, newErrorPayload(status, message, description), requestedMediaType)
}

func newErrorPayload(status int, message, description string) ErrorPayload {
	return ErrorPayload{
		StatusCode:  status,
		Message:     message,
		Description: description,
	}
}
