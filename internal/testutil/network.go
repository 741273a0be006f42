// Package testutil 여러 패키지의 테스트가 공유하는 보조 함수를 제공합니다.
package testutil

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// FreePort 127.0.0.1에서 현재 사용 가능한 TCP 포트를 반환합니다.
func FreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// ClosedPortURL 리스닝 중인 프로세스가 없는 로컬 HTTP 주소를 반환합니다.
// 연결 거부 시나리오를 재현할 때 사용합니다.
func ClosedPortURL(path string) (string, error) {
	port, err := FreePort()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://127.0.0.1:%d%s", port, path), nil
}

// WaitForHTTP url이 어떤 HTTP 응답이든 반환할 때까지 폴링합니다.
func WaitForHTTP(ctx context.Context, url string) error {
	client := &http.Client{Timeout: time.Second}
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		if resp, err := client.Do(req); err == nil {
			resp.Body.Close()
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s 응답 대기 시간 초과: %w", url, ctx.Err())
		case <-ticker.C:
		}
	}
}
