package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
	"github.com/matjazbravc/screen-scraping-server/pkg/validation"
)

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러 메시지에 Go 구조체 필드명 대신 JSON 키 이름을 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("duration", validateDuration); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'duration' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("scrape_url", validateScrapeURL); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'scrape_url' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateDuration(fl validator.FieldLevel) bool {
	return validation.ValidateDuration(fl.Field().String()) == nil
}

func validateScrapeURL(fl validator.FieldLevel) bool {
	return validation.ValidateHTTPURL(fl.Field().String()) == nil
}

// checkStruct 구조체의 유효성을 태그 규칙에 따라 검증하고, 첫 번째 오류를 사용자 친화적인 도메인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	firstErr := validationErrors[0]

	// 필드별 커스텀 에러 처리
	switch firstErr.StructField() {
	case "Address":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("스크래핑 대상 주소(url.address)는 http 또는 https URL이어야 합니다: '%v'", firstErr.Value()))
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "웹 서비스 포트(api.listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "Timeout":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("스크래핑 타임아웃(scraper.timeout)은 0보다 큰 시간 간격이어야 합니다: '%v' (예: 30s)", firstErr.Value()))
	case "RequestTimeout":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 타임아웃(api.request_timeout)은 0보다 큰 시간 간격이어야 합니다: '%v' (예: 60s)", firstErr.Value()))
	case "Tag":
		return apperrors.New(apperrors.InvalidInput, "추출 대상 태그 이름(scraper.selector.tag)은 필수입니다")
	case "AllowOrigins":
		if firstErr.Tag() == "min" {
			return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(api.cors.allow_origins) 목록이 비어있습니다")
		}
	}

	// 태그별 커스텀 에러 처리
	if firstErr.Tag() == "cors_origin" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", firstErr.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Namespace(), firstErr.Tag()))
}
