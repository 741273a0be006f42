// Package validation 설정 파일과 환경 변수로 들어오는 값(CORS Origin, 포트, URL, 시간 간격)의 형식을 검증합니다.
//
// 모든 함수는 상태를 갖지 않으며, 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환합니다.
package validation
