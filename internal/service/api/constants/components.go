// Package constants API 서비스 전반에서 공유하는 상수를 정의합니다.
package constants

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	ComponentService                 = "api.service"
	ComponentHandler                 = "api.handler"
	ComponentMiddlewareHTTPLogger    = "api.middleware.http_logger"
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"
	ComponentErrorHandler            = "api.error_handler"
)
