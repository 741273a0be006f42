// Package handler /api/v1 엔드포인트의 요청을 처리합니다.
package handler

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/matjazbravc/screen-scraping-server/internal/config"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
	"github.com/matjazbravc/screen-scraping-server/internal/service/api/constants"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/compression"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/negotiation"
	"github.com/matjazbravc/screen-scraping-server/internal/service/content/response"
	"github.com/matjazbravc/screen-scraping-server/internal/service/scraper/fetcher"
	applog "github.com/matjazbravc/screen-scraping-server/pkg/log"
	"github.com/matjazbravc/screen-scraping-server/pkg/strutil"
)

// Handler 스크래핑 요청 핸들러
type Handler struct {
	scraper Scraper
	builder ResponseBuilder
	cfg     ConfigReader
}

// NewHandler Handler 인스턴스를 생성합니다. 의존성이 nil이면 패닉이 발생합니다.
func NewHandler(s Scraper, b ResponseBuilder, cfg ConfigReader) *Handler {
	if s == nil {
		panic(constants.PanicMsgScraperRequired)
	}
	if b == nil {
		panic(constants.PanicMsgResponseBuilderRequired)
	}
	if cfg == nil {
		panic(constants.PanicMsgConfigReaderRequired)
	}

	return &Handler{
		scraper: s,
		builder: b,
		cfg:     cfg,
	}
}

// ScrapeTitlesHandler godoc
// @Summary 제목 목록 스크래핑
// @Description 설정된 대상 URL(url.address)의 문서를 가져와 선택자(기본: td[class*="title"])에 일치하는
// @Description 모든 요소의 텍스트를 문서 순서대로 반환합니다.
// @Description
// @Description 응답 형식은 Accept 헤더로 결정되며(application/json 기본, application/yaml 지원),
// @Description 요청 본문이 있으면 Content-Encoding(gzip, deflate)과 Content-Type(JSON, YAML)을 검증합니다.
// @Tags Scraper
// @Accept json
// @Accept yaml
// @Produce json
// @Produce yaml
// @Success 200 {array} string "추출된 제목 목록"
// @Failure 400 {object} response.ErrorPayload "대상 URL 미설정 또는 손상된 본문"
// @Failure 415 {object} response.ErrorPayload "지원하지 않는 Content-Encoding 또는 Content-Type"
// @Failure 500 {object} response.ErrorPayload "스크래핑 실패"
// @Router /api/v1/titles [get]
// @Router /api/v1/titles [post]
// @Router /api/v1/scrape [get]
// @Router /api/v1/scrape [post]
func (h *Handler) ScrapeTitlesHandler(c echo.Context) error {
	req, err := NewRequest(c)
	if err != nil {
		return err
	}

	res := h.Handle(c.Request().Context(), req)

	return c.Blob(res.StatusCode, res.MediaType, res.Body)
}

// Handle 요청을 처리하여 직렬화된 응답을 반환합니다.
//
// 처리 단계는 Start → ConfigValidated → Fetched → ResponseBuilt → Done이며,
// 어느 단계에서든 실패하면 Errored로 전이하고 에러 응답을 반환합니다.
// 처리 중 발생한 패닉은 500 응답으로 변환됩니다.
func (h *Handler) Handle(ctx context.Context, req Request) (res response.Response) {
	mediaType := negotiation.RequestedMediaType(req.Header)

	logger := applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"method":     req.Method,
		"url":        req.URL,
		"media_type": mediaType,
	})
	logger.Info("스크래핑 요청 처리를 시작합니다")

	current := stateStart
	transition := func(next state) {
		logger.WithFields(applog.Fields{
			"from": current.String(),
			"to":   next.String(),
		}).Debug("요청 처리 단계 전이")
		current = next
	}

	defer func() {
		if r := recover(); r != nil {
			var err error
			if e, ok := r.(error); ok {
				err = apperrors.Wrap(e, apperrors.Unexpected, "요청 처리 중 패닉이 발생했습니다")
			} else {
				err = apperrors.Newf(apperrors.Unexpected, "요청 처리 중 패닉이 발생했습니다: %v", r)
			}

			logger.WithField("error", err).Error("요청 처리 중 패닉을 복구했습니다")
			transition(stateErrored)
			res = h.internalServerError(err, mediaType)
		}
	}()

	// 1. 본문 검증 (본문이 있을 때만)
	if req.HasPayload() {
		if r, ok := h.inspectPayload(req, mediaType); !ok {
			logger.Warn("요청 본문 검증에 실패했습니다")
			transition(stateErrored)
			return r
		}
	}

	// 2. 대상 URL 설정 확인
	address := h.cfg.String(config.KeyURLAddress)
	if strutil.IsBlank(address) {
		logger.Warn(constants.ErrMsgURLAddressMissing)
		transition(stateErrored)
		return h.builder.BadRequest(constants.ErrMsgURLAddressMissing, mediaType)
	}
	transition(stateConfigValidated)

	// 3. 스크래핑
	titles, err := h.scraper.FetchAndExtract(ctx, address)
	if err != nil {
		logger.WithFields(applog.Fields{
			"target": fetcher.RedactRawURL(address),
			"error":  err,
		}).Error("스크래핑에 실패했습니다")
		transition(stateErrored)
		return h.internalServerError(err, mediaType)
	}
	transition(stateFetched)

	// 4. 응답 생성
	res = h.builder.OK(titles, mediaType)
	transition(stateResponseBuilt)

	logger.WithField("count", len(titles)).Info("스크래핑 요청 처리를 완료했습니다")
	transition(stateDone)

	return res
}

// inspectPayload Content-Encoding을 해제한 뒤 Content-Type을 검증합니다.
// 검증에 실패하면 에러 응답과 false를 반환합니다.
func (h *Handler) inspectPayload(req Request, mediaType string) (response.Response, bool) {
	d := negotiation.NewContentDescriptor(req.Header)

	if _, err := compression.Decompress(req.Body, d.Encoding); err != nil {
		if apperrors.Is(err, apperrors.UnsupportedEncoding) {
			return h.builder.UnsupportedMediaType(fmt.Sprintf("%s: '%s'", constants.ErrMsgUnsupportedEncoding, d.Encoding), mediaType), false
		}
		return h.builder.BadRequest(constants.ErrMsgCorruptPayload, mediaType), false
	}

	if !negotiation.IsAcceptableContentType(d) {
		return h.builder.UnsupportedMediaType(fmt.Sprintf("%s: '%s'", constants.ErrMsgUnsupportedContentType, d.MediaType), mediaType), false
	}

	return response.Response{}, true
}

// internalServerError 원인 에러 메시지를 포함한 500 응답을 생성합니다.
func (h *Handler) internalServerError(err error, mediaType string) response.Response {
	return h.builder.InternalServerError(
		constants.ErrMsgRequestProcessingPrefix+err.Error(),
		apperrors.TypeOf(err).String(),
		mediaType,
	)
}
