// Package middleware API 서버에 적용되는 echo 미들웨어를 제공합니다.
//
//   - HTTPLogger: 요청/응답 접근 로그 (민감한 쿼리 파라미터 마스킹)
//   - PanicRecovery: 패닉 복구 및 스택 트레이스 로깅
//   - Logger: echo 내부 로그를 애플리케이션 로거로 연결하는 어댑터
package middleware
