package constants

// 클라이언트에게 반환되는 에러 메시지입니다.
const (
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgNotFound              = "페이지를 찾을 수 없습니다"
	ErrMsgMethodNotAllowed      = "허용되지 않는 메서드입니다"
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"
	ErrMsgServiceUnavailable    = "요청 처리 시간이 초과되었습니다"
	ErrMsgInternalServer        = "내부 서버 오류가 발생했습니다"

	ErrMsgURLAddressMissing       = "스크래핑 대상 URL이 설정되지 않았습니다"
	ErrMsgUnsupportedEncoding     = "지원하지 않는 Content-Encoding 형식입니다"
	ErrMsgCorruptPayload          = "요청 본문의 압축을 해제할 수 없습니다"
	ErrMsgUnsupportedContentType  = "지원하지 않는 Content-Type 형식입니다"
	ErrMsgRequestProcessingPrefix = "요청을 처리하는 중 에러가 발생했습니다: "
)

// 내부 로깅 메시지입니다.
const (
	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구동하는 중에 치명적인 오류가 발생했습니다"

	LogMsgHTTPRequest        = "HTTP 요청"
	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
	LogMsgPanicRecovered     = "PANIC RECOVERED"
	LogMsgHealthCheck        = "헬스체크 요청"
	LogMsgVersionInfo        = "버전 정보 요청"
)

// 필수 의존성이 누락되었을 때의 panic 메시지입니다.
const (
	PanicMsgAppConfigRequired       = "AppConfig는 필수입니다"
	PanicMsgScraperRequired         = "Scraper는 필수입니다"
	PanicMsgResponseBuilderRequired = "ResponseBuilder는 필수입니다"
	PanicMsgConfigReaderRequired    = "ConfigReader는 필수입니다"
)
