// Package testutil 테스트에서 공통으로 사용하는 헬퍼를 제공합니다.
package testutil

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FreePort 커널이 할당한 빈 포트 번호를 반환합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "빈 포트를 할당받을 수 없습니다")
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// Listening 해당 포트에 TCP 연결이 가능하면 true를 반환합니다.
func Listening(port int) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), 100*time.Millisecond)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// RequireListening 포트가 열릴 때까지 최대 timeout 동안 기다립니다.
func RequireListening(t testing.TB, port int, timeout time.Duration) {
	t.Helper()
	require.Eventually(t, func() bool { return Listening(port) }, timeout, 10*time.Millisecond, "포트 %d가 열리지 않았습니다", port)
}

// RequireClosed 포트가 닫힐 때까지 최대 timeout 동안 기다립니다.
func RequireClosed(t testing.TB, port int, timeout time.Duration) {
	t.Helper()
	require.Eventually(t, func() bool { return !Listening(port) }, timeout, 10*time.Millisecond, "포트 %d가 여전히 열려 있습니다", port)
}
