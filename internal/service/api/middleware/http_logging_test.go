package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/constants"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"민감 파라미터 없음", "/api/v1/titles?page=1", "/api/v1/titles?page=1"},
		{"쿼리 없음", "/health", "/health"},
		{"token 마스킹", "/api/v1/titles?token=abcdefghijklmnop", "/api/v1/titles?token=abcd%2A%2A%2Amnop"},
		{"짧은 값 전체 마스킹", "/x?password=abc", "/x?password=%2A%2A%2A"},
		{"파싱 실패 시 원본", "%zz", "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.uri))
		})
	}
}

// 전역 로거에 훅을 설치하므로 병렬로 실행하지 않습니다.
func TestHTTPLogger(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	e := echo.New()
	e.Use(HTTPLogger())
	e.GET("/api/v1/titles", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return errors.New("boom")
	})

	t.Run("성공: 요청 정보를 기록", func(t *testing.T) {
		hook.Reset()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/titles?secret=abcdefghijklmnop", nil)
		req.Header.Set(echo.HeaderAccept, "application/yaml")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		entry := findEntry(hook, constants.LogMsgHTTPRequest)
		require.NotNil(t, entry)
		assert.Equal(t, http.MethodGet, entry.Data["method"])
		assert.Equal(t, "/api/v1/titles", entry.Data["path"])
		assert.Equal(t, http.StatusOK, entry.Data["status"])
		assert.Equal(t, "application/yaml", entry.Data["accept"])
		assert.Equal(t, defaultBytesIn, entry.Data["bytes_in"])
		assert.NotContains(t, entry.Data["uri"], "abcdefghijklmnop")
	})

	t.Run("성공: 핸들러 에러는 에러 핸들러를 거친 상태 코드로 기록", func(t *testing.T) {
		hook.Reset()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		entry := findEntry(hook, constants.LogMsgHTTPRequest)
		require.NotNil(t, entry)
		assert.Equal(t, http.StatusInternalServerError, entry.Data["status"])
	})
}

func findEntry(hook *test.Hook, message string) *logrus.Entry {
	for _, entry := range hook.AllEntries() {
		if entry.Message == message {
			return entry
		}
	}
	return nil
}
