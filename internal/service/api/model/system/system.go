// Package system 시스템 엔드포인트(/health, /version)의 응답 모델을 정의합니다.
package system

// DependencyStatus 의존성 하나의 상태
type DependencyStatus struct {
	// 상태: healthy, unhealthy
	Status string `json:"status" yaml:"status" example:"healthy"`
	// 상태 상세 정보
	Message string `json:"message,omitempty" yaml:"message,omitempty" example:"스크래핑 대상 URL이 설정되어 있습니다"`
}

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 상태: healthy, unhealthy
	Status string `json:"status" yaml:"status" example:"healthy"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime" yaml:"uptime" example:"3600"`
	// 의존성별 상태 (키: 의존성 이름)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// VersionResponse 서버 버전 정보 응답
type VersionResponse struct {
	Version     string `json:"version" yaml:"version" example:"v1.0.0"`
	Commit      string `json:"commit" yaml:"commit" example:"abc1234"`
	BuildDate   string `json:"build_date" yaml:"build_date" example:"2026-01-01T00:00:00Z"`
	BuildNumber string `json:"build_number" yaml:"build_number" example:"100"`
	GoVersion   string `json:"go_version" yaml:"go_version" example:"go1.24.0"`
	Platform    string `json:"platform" yaml:"platform" example:"linux/amd64"`
}
