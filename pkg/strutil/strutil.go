// Package strutil 문자열 처리 유틸리티 함수들을 제공합니다.
package strutil

import "strings"

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백(개행, 탭 포함)을 하나의 공백으로 축약합니다.
// 예: "  hello \n\t world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsBlank 문자열이 비어 있거나 공백 문자로만 이루어져 있으면 true를 반환합니다.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MaskSensitiveData 로그에 남길 민감 정보를 마스킹합니다.
//   - 3자 이하: 전체 마스킹
//   - 12자 이하: 앞 4자만 노출
//   - 그 외: 앞 4자와 뒤 4자만 노출
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
