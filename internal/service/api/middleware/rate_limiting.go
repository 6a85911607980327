package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxTrackedClients 토큰 버킷을 유지하는 최대 클라이언트(IP) 수
	maxTrackedClients = 10000

	// clientIdleTTL 이 시간 동안 요청이 없던 클라이언트의 버킷은 정리 대상입니다.
	clientIdleTTL = 3 * time.Minute

	// retryAfterSeconds 429 응답의 Retry-After 헤더 값(초)
	retryAfterSeconds = "1"
)

type client struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

// clientLimiter 클라이언트 IP마다 독립된 토큰 버킷을 적용합니다.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*client

	limit rate.Limit
	burst int

	maxClients int
	idleTTL    time.Duration
	now        func() time.Time
}

func newClientLimiter(requestsPerSecond, burst int) *clientLimiter {
	return &clientLimiter{
		clients:    make(map[string]*client),
		limit:      rate.Limit(requestsPerSecond),
		burst:      burst,
		maxClients: maxTrackedClients,
		idleTTL:    clientIdleTTL,
		now:        time.Now,
	}
}

// allow ip의 버킷에서 토큰 하나를 소비할 수 있으면 true를 반환합니다.
func (l *clientLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	c, ok := l.clients[ip]
	if !ok {
		if len(l.clients) >= l.maxClients {
			l.evict(now)
		}
		c = &client{bucket: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now

	return c.bucket.AllowN(now, 1)
}

// evict 유휴 클라이언트를 모두 제거합니다. 유휴 클라이언트가 없으면 가장 오래전에 본 클라이언트 하나를 제거합니다.
func (l *clientLimiter) evict(now time.Time) {
	var oldestIP string
	var oldest time.Time

	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > l.idleTTL {
			delete(l.clients, ip)
			continue
		}
		if oldestIP == "" || c.lastSeen.Before(oldest) {
			oldestIP, oldest = ip, c.lastSeen
		}
	}

	if len(l.clients) >= l.maxClients && oldestIP != "" {
		delete(l.clients, oldestIP)
	}
}

func (l *clientLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimiting 클라이언트 IP별로 초당 requestsPerSecond개, 최대 burst개까지 요청을 허용합니다.
// 초과한 요청은 Retry-After 헤더와 함께 429로 응답합니다.
//
// 상태는 프로세스 메모리에만 있으므로 서버 인스턴스마다 따로 적용됩니다.
// requestsPerSecond 또는 burst가 0 이하이면 패닉이 발생합니다.
func RateLimiting(requestsPerSecond, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newClientLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if limiter.allow(ip) {
				return next(c)
			}

			applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
				"remote_ip": ip,
				"method":    c.Request().Method,
				"path":      c.Request().URL.Path,
			}).Warn(constants.LogMsgRateLimitExceeded)

			c.Response().Header().Set(echo.HeaderRetryAfter, retryAfterSeconds)
			return ErrRateLimitExceeded
		}
	}
}
