package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// clientLimiter
// =============================================================================

// newTestClientLimiter 시계를 직접 제어할 수 있는 clientLimiter를 생성합니다.
func newTestClientLimiter(requestsPerSecond, burst, maxClients int) (*clientLimiter, *time.Time) {
	now := time.Unix(1700000000, 0)

	l := newClientLimiter(requestsPerSecond, burst)
	l.maxClients = maxClients
	l.now = func() time.Time { return now }

	return l, &now
}

func TestClientLimiter_Allow(t *testing.T) {
	t.Parallel()

	l, now := newTestClientLimiter(1, 2, 100)

	assert.True(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"), "버스트를 소진하면 차단되어야 합니다")
	assert.True(t, l.allow("10.0.0.2"), "다른 IP는 독립적인 버킷을 사용해야 합니다")

	*now = now.Add(time.Second)
	assert.True(t, l.allow("10.0.0.1"), "1초 후에는 토큰 하나가 다시 채워져야 합니다")
	assert.False(t, l.allow("10.0.0.1"))

	assert.Equal(t, 2, l.tracked())
}

func TestClientLimiter_Eviction(t *testing.T) {
	t.Parallel()

	t.Run("가득 차면 가장 오래된 클라이언트 제거", func(t *testing.T) {
		t.Parallel()

		l, now := newTestClientLimiter(10, 20, 3)

		for i := 0; i < 10; i++ {
			l.allow(fmt.Sprintf("10.0.0.%d", i))
			*now = now.Add(time.Second)
		}

		assert.Equal(t, 3, l.tracked(), "최대 개수를 초과하지 않아야 합니다")
		assert.Contains(t, l.clients, "10.0.0.9")
		assert.Contains(t, l.clients, "10.0.0.8")
		assert.NotContains(t, l.clients, "10.0.0.0")
	})

	t.Run("유휴 클라이언트 일괄 제거", func(t *testing.T) {
		t.Parallel()

		l, now := newTestClientLimiter(10, 20, 3)

		l.allow("10.0.0.1")
		l.allow("10.0.0.2")
		l.allow("10.0.0.3")

		*now = now.Add(clientIdleTTL + time.Second)
		l.allow("10.0.0.4")

		assert.Equal(t, 1, l.tracked(), "유휴 시간이 지난 클라이언트는 모두 제거되어야 합니다")
		assert.Contains(t, l.clients, "10.0.0.4")
	})
}

func TestClientLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	l := newClientLimiter(10, 20)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.allow(fmt.Sprintf("192.168.0.%d", i%5))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, l.tracked())
}

// =============================================================================
// RateLimiting 미들웨어
// =============================================================================

func TestRateLimiting_InvalidArguments(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, 0), func() {
		RateLimiting(0, 1)
	})
	assert.PanicsWithValue(t, fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, -1), func() {
		RateLimiting(1, -1)
	})
}

func TestRateLimiting_BlocksAfterBurst(t *testing.T) {
	hook := captureLogs(t)

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	// 초당 1개, 버스트 2: 세 번째 요청부터 차단 (테스트 시간 내 토큰 재충전 없음)
	e.Use(RateLimiting(1, 2))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)

	rec := send("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(echo.HeaderRetryAfter))
	assert.JSONEq(t, `{"result_code":429,"message":"요청이 너무 많습니다. 잠시 후 다시 시도해주세요"}`, rec.Body.String())

	// 다른 IP는 영향을 받지 않음
	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code)

	entry := findEntry(hook, constants.LogMsgRateLimitExceeded)
	require.NotNil(t, entry)
	assert.Equal(t, "10.0.0.1", entry.Data["remote_ip"])
	assert.Equal(t, constants.ComponentMiddlewareRateLimit, entry.Data["component"])
}
