package constants

// SensitiveQueryParams 접근 로그에 남길 때 값을 마스킹해야 하는 쿼리 파라미터입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
