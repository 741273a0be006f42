package validation

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// hostnameLabelRegex RFC 1123 레이블: 영문/숫자로 시작하고 끝나며 하이픈을 포함할 수 있는 1~63자
var hostnameLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// ValidatePort 포트 번호가 1-65535 범위인지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateDuration time.ParseDuration으로 해석 가능한 양수 시간 간격인지 검증합니다. (예: 30s, 500ms)
func ValidateDuration(d string) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(d))
	if err != nil {
		return fmt.Errorf("잘못된 시간 간격 형식입니다 (input=%q, 예: 30s, 500ms): %w", d, err)
	}
	if parsed <= 0 {
		return fmt.Errorf("시간 간격은 0보다 커야 합니다 (input=%q)", d)
	}
	return nil
}

// ValidateHTTPURL 스킴이 http 또는 https이고 호스트가 있는 절대 URL인지 검증합니다.
func ValidateHTTPURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("URL 파싱 실패 (input=%q): %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL은 http 또는 https 스키마를 사용해야 합니다 (input=%q)", raw)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("URL에 호스트가 없습니다 (input=%q)", raw)
	}
	return nil
}

// ValidateCORSOrigin 'Scheme://Host[:Port]' 형식의 CORS Origin인지 검증합니다. 와일드카드('*')는 허용됩니다.
//
// 경로, 후행 슬래시, 쿼리, Fragment, 사용자 자격 증명을 포함하면 유효하지 않습니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	switch {
	case origin == "*":
		return nil
	case origin == "":
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	case strings.HasSuffix(origin, "/"):
		return fmt.Errorf("CORS Origin은 경로 구분자('/')로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin 파싱 실패 (input=%q): %w", origin, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin 스키마는 'http' 또는 'https'만 허용됩니다 (input=%q)", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("CORS Origin은 경로, 쿼리, Fragment를 포함할 수 없습니다 (input=%q)", origin)
	}
	if u.User != nil {
		return fmt.Errorf("CORS Origin은 사용자 자격 증명을 포함할 수 없습니다 (input=%q)", origin)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트 번호가 유효하지 않습니다 (input=%q)", origin)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류 (input=%q): %w", origin, err)
		}
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("CORS Origin에 호스트가 없습니다 (input=%q)", origin)
	}
	if err := ValidateHostname(host); err != nil {
		return fmt.Errorf("CORS Origin 호스트 오류: %w", err)
	}

	return nil
}

// ValidateHostname localhost, IP 주소 또는 RFC 1123 호스트명인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("호스트명 전체 길이는 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if !hostnameLabelRegex.MatchString(label) {
			return fmt.Errorf("호스트명 레이블이 올바르지 않습니다 (label=%q, host=%q)", label, host)
		}
	}

	// 최상위 도메인은 숫자로만 구성될 수 없습니다.
	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}

	return nil
}
