package constants

// 헬스체크 상태 값입니다.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	// DependencyScrapeTarget 스크래핑 대상 URL 설정 상태
	DependencyScrapeTarget = "scrape_target"

	MsgDepStatusConfigured    = "스크래핑 대상 URL이 설정되어 있습니다"
	MsgDepStatusNotConfigured = "스크래핑 대상 URL이 설정되지 않았습니다"
)
