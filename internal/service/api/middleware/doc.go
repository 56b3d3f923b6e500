// Package middleware 추적 번호 API 서버가 사용하는 Echo 미들웨어를 제공합니다.
//
//   - PanicRecovery: 핸들러 panic 복구 및 스택 로깅
//   - HTTPLogger: 요청/응답 구조화 로깅 (민감한 쿼리 파라미터 마스킹)
//   - RateLimiting: IP 단위 요청 속도 제한
//   - EchoLogger: Echo 내부 로그를 애플리케이션 로거로 연결
//
// 사용 예시:
//
//	e := echo.New()
//	e.Logger = middleware.NewEchoLogger(applog.StandardLogger())
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.HTTPLogger())
//	e.Use(middleware.RateLimiting(20, 40))
package middleware
