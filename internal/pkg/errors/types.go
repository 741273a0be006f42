package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
//
// API 계층은 이 값을 기준으로 HTTP 상태 코드를 결정하므로,
// 새로운 값을 추가할 때는 httputil.StatusCode()의 매핑도 함께 확인해야 합니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 직렬화 실패 등)
	Internal

	// System 시스템 또는 인프라 오류 (파일, 환경 변수 등)
	System

	// InvalidInput 잘못된 입력값 (손상된 요청 본문, 유효성 검사 실패 등)
	InvalidInput

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ConfigMissing 요청 처리에 필요한 설정값이 비어 있음
	ConfigMissing

	// UnsupportedEncoding 지원하지 않는 Content-Encoding
	UnsupportedEncoding

	// UnsupportedContentType 허용 목록에 없는 Content-Type
	UnsupportedContentType

	// FetchFailed 원격 페이지 요청 실패 (네트워크 오류, 타임아웃, 비정상 상태 코드)
	FetchFailed

	// ParsingFailed 데이터 파싱 또는 형식 변환 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 서비스 일시적 사용 불가
	Unavailable

	// Unexpected 예상하지 못한 실패 (panic 복구 등)
	Unexpected
)

var errorTypeNames = [...]string{
	Unknown:                "Unknown",
	Internal:               "Internal",
	System:                 "System",
	InvalidInput:           "InvalidInput",
	NotFound:               "NotFound",
	ConfigMissing:          "ConfigMissing",
	UnsupportedEncoding:    "UnsupportedEncoding",
	UnsupportedContentType: "UnsupportedContentType",
	FetchFailed:            "FetchFailed",
	ParsingFailed:          "ParsingFailed",
	Timeout:                "Timeout",
	Unavailable:            "Unavailable",
	Unexpected:             "Unexpected",
}

// String 에러 타입의 이름을 반환합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
