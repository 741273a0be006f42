package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/codec"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/negotiation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestBuilder_OK(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	titles := []string{"첫 번째 기사", "두 번째 기사"}

	t.Run("성공: 기본 JSON", func(t *testing.T) {
		t.Parallel()

		resp := b.OK(titles, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, codec.MediaTypeJSON, resp.MediaType)
		assert.JSONEq(t, `["첫 번째 기사","두 번째 기사"]`, string(resp.Body))
	})

	t.Run("성공: YAML 요청", func(t *testing.T) {
		t.Parallel()

		resp := b.OK(titles, "text/yaml")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, codec.MediaTypeYAML, resp.MediaType)

		var decoded []string
		require.NoError(t, yaml.Unmarshal(resp.Body, &decoded))
		assert.Equal(t, titles, decoded)
	})

	t.Run("성공: 빈 목록은 빈 배열", func(t *testing.T) {
		t.Parallel()

		resp := b.OK([]string{}, "application/json")
		assert.Equal(t, "[]", string(resp.Body))
	})

	t.Run("성공: 알 수 없는 미디어 타입은 JSON", func(t *testing.T) {
		t.Parallel()

		resp := b.OK(titles, "application/xml")
		assert.Equal(t, codec.MediaTypeJSON, resp.MediaType)
	})
}

func TestBuilder_Errors(t *testing.T) {
	t.Parallel()

	b := NewBuilder(negotiation.NewNegotiator(codec.NewDefaultRegistry()))

	tests := []struct {
		name        string
		resp        Response
		status      int
		message     string
		description string
	}{
		{"BadRequest", b.BadRequest("잘못된 요청", ""), http.StatusBadRequest, "잘못된 요청", ""},
		{"NotFound", b.NotFound("없음", ""), http.StatusNotFound, "없음", ""},
		{"UnsupportedMediaType", b.UnsupportedMediaType("지원하지 않는 형식", ""), http.StatusUnsupportedMediaType, "지원하지 않는 형식", ""},
		{"InternalServerError", b.InternalServerError("실패", "FetchFailed", ""), http.StatusInternalServerError, "실패", "FetchFailed"},
		{"Error", b.Error(http.StatusServiceUnavailable, "점검 중", "Unavailable", ""), http.StatusServiceUnavailable, "점검 중", "Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.status, tt.resp.StatusCode)
			assert.Equal(t, codec.MediaTypeJSON, tt.resp.MediaType)

			body := string(tt.resp.Body)
			assert.Equal(t, int64(tt.status), gjson.Get(body, "status_code").Int())
			assert.Equal(t, tt.message, gjson.Get(body, "message").String())
			if tt.description == "" {
				assert.False(t, gjson.Get(body, "description").Exists())
			} else {
				assert.Equal(t, tt.description, gjson.Get(body, "description").String())
			}
		})
	}
}

func TestBuilder_StructuredValues(t *testing.T) {
	t.Parallel()

	type rejected struct {
		Field  string `json:"field" yaml:"field"`
		Reason string `json:"reason" yaml:"reason"`
	}
	value := rejected{Field: "url", Reason: "missing"}

	b := NewBuilder(nil)

	tests := []struct {
		name   string
		resp   Response
		status int
	}{
		{"BadRequestValue", b.BadRequestValue(value, ""), http.StatusBadRequest},
		{"NotFoundValue", b.NotFoundValue(value, ""), http.StatusNotFound},
		{"UnsupportedMediaTypeValue", b.UnsupportedMediaTypeValue(value, ""), http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.status, tt.resp.StatusCode)
			assert.Equal(t, codec.MediaTypeJSON, tt.resp.MediaType)
			assert.JSONEq(t, `{"field":"url","reason":"missing"}`, string(tt.resp.Body))
		})
	}

	t.Run("성공: YAML 협상", func(t *testing.T) {
		t.Parallel()

		resp := b.NotFoundValue(value, "text/yaml")
		assert.Equal(t, codec.MediaTypeYAML, resp.MediaType)
		assert.Equal(t, "field: url\nreason: missing\n", string(resp.Body))
	})
}

func TestBuilder_ErrorYAML(t *testing.T) {
	t.Parallel()

	resp := NewBuilder(nil).BadRequest("설정 누락", "application/x-yaml")
	assert.Equal(t, codec.MediaTypeYAML, resp.MediaType)

	var payload ErrorPayload
	require.NoError(t, yaml.Unmarshal(resp.Body, &payload))
	assert.Equal(t, ErrorPayload{StatusCode: http.StatusBadRequest, Message: "설정 누락"}, payload)
}

func TestBuilder_EncodingFailure(t *testing.T) {
	t.Parallel()

	resp := NewBuilder(nil).OK(map[string]any{"ch": make(chan int)}, "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, codec.MediaTypeJSON, resp.MediaType)
	assert.Equal(t, int64(http.StatusInternalServerError), gjson.GetBytes(resp.Body, "status_code").Int())
	assert.NotEmpty(t, gjson.GetBytes(resp.Body, "message").String())
}

func TestErrorPayload_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload ErrorPayload
	}{
		{"설명 포함", ErrorPayload{StatusCode: 500, Message: "요청을 처리하는 중 에러가 발생했습니다: 연결 거부", Description: "FetchFailed"}},
		{"설명 없음", ErrorPayload{StatusCode: 415, Message: "지원하지 않는 Content-Type입니다"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var decoded ErrorPayload
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.payload, decoded)
		})
	}
}
