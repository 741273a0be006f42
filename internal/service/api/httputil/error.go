// Package httputil echo 핸들러와 미들웨어가 공유하는 HTTP 응답 유틸리티를 제공합니다.
package httputil

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/constants"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/negotiation"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/response"
	applog "github.com/matjazbravc/screen-scraping-server/pkg/log"
)

// StatusCode 에러 타입에 대응하는 HTTP 상태 코드를 반환합니다.
func StatusCode(t apperrors.ErrorType) int {
	switch t {
	case apperrors.ConfigMissing, apperrors.InvalidInput:
		return http.StatusBadRequest
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.UnsupportedEncoding, apperrors.UnsupportedContentType:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler echo의 전역 HTTPErrorHandler를 생성합니다.
//
// 라우터 수준의 에러(404, 405, 413, 503)와 핸들러가 반환한 에러를 모두 협상된 형식의
// ErrorPayload로 응답합니다. 5xx는 Error, 4xx는 Warn 레벨로 기록합니다.
func NewErrorHandler(b *response.Builder) echo.HTTPErrorHandler {
	if b == nil {
		b = response.NewBuilder(nil)
	}

	return func(err error, c echo.Context) {
		code, message := resolve(err)

		fields := applog.Fields{
			"path":        c.Request().URL.Path,
			"method":      c.Request().Method,
			"status_code": code,
			"error":       err,
			"remote_ip":   c.RealIP(),
			"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
		}
		if code >= http.StatusInternalServerError {
			applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
		} else if code >= http.StatusBadRequest {
			applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
		}

		// 이미 응답이 전송된 경우 추가로 쓰지 않습니다.
		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		res := b.Error(code, message, "", negotiation.RequestedMediaType(c.Request().Header))
		_ = c.Blob(res.StatusCode, res.MediaType, res.Body)
	}
}

// resolve 에러로부터 상태 코드와 클라이언트에게 보여줄 메시지를 결정합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, httpErrorMessage(he)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code := StatusCode(appErr.Type())
		if code >= http.StatusInternalServerError {
			return code, constants.ErrMsgInternalServer
		}
		return code, appErr.Message()
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch he.Code {
	case http.StatusNotFound:
		return constants.ErrMsgNotFound
	case http.StatusMethodNotAllowed:
		return constants.ErrMsgMethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return constants.ErrMsgRequestEntityTooLarge
	case http.StatusServiceUnavailable:
		return constants.ErrMsgServiceUnavailable
	}

	if msg, ok := he.Message.(string); ok && msg != "" {
		return msg
	}
	if he.Code >= http.StatusInternalServerError {
		return constants.ErrMsgInternalServer
	}
	return constants.ErrMsgBadRequest
}
