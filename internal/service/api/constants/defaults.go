package constants

import "time"

// HTTP 서버 기본값입니다.
const (
	// DefaultRequestTimeout 요청 처리 타임아웃이 설정되지 않았을 때 적용됩니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultBodyLimit 요청 본문 최대 크기 (echo BodyLimit 형식)
	DefaultBodyLimit = "2M"

	DefaultReadTimeout       = 30 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 90 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// ShutdownTimeout Graceful Shutdown 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)
