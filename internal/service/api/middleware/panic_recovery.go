package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/constants"
	applog "github.com/matjazbravc/screen-scraping-server/pkg/log"
)

// stackBufferSize 패닉 스택 트레이스 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 패닉을 복구하고 스택 트레이스와 함께 기록한 뒤 에러 핸들러로 위임합니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				// 연결 중단 신호는 net/http 서버가 처리하도록 다시 전파합니다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err := newErrPanicRecovered(r)

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error": err,
					"stack": string(stack[:length]),
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error(constants.LogMsgPanicRecovered)

				c.Error(err)
				returnErr = nil
			}()

			return next(c)
		}
	}
}

func newErrPanicRecovered(r any) error {
	if err, ok := r.(error); ok {
		return apperrors.Wrap(err, apperrors.Unexpected, "처리 중 패닉이 발생했습니다")
	}
	return apperrors.New(apperrors.Unexpected, fmt.Sprintf("처리 중 패닉이 발생했습니다: %v", r))
}
