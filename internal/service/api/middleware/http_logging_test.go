package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// HTTPLogger 미들웨어 테스트
// =============================================================================

func TestHTTPLogger_Table(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		handler        echo.HandlerFunc
		headers        map[string]string
		expectedStatus int
		verify         func(t *testing.T, data map[string]any)
	}{
		{
			name:   "성공: 기본 요청 로깅",
			target: "/api/info",
			handler: func(c echo.Context) error {
				return c.String(http.StatusOK, "hello")
			},
			headers:        map[string]string{echo.HeaderXRequestID: "req-1", "User-Agent": "test-agent"},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, data map[string]any) {
				assert.Equal(t, http.MethodGet, data["method"])
				assert.Equal(t, "/api/info", data["path"])
				assert.Equal(t, "/api/info", data["uri"])
				assert.Equal(t, http.StatusOK, data["status"])
				assert.Equal(t, "5", data["bytes_out"])
				assert.Equal(t, "0", data["bytes_in"], "Content-Length가 없으면 0이어야 합니다")
				assert.Equal(t, "test-agent", data["user_agent"])
				assert.NotEmpty(t, data["latency_human"])
			},
		},
		{
			name:   "성공: 민감한 쿼리 파라미터 마스킹",
			target: "/api/info?token=secret123456789&id=100",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			},
			expectedStatus: http.StatusNoContent,
			verify: func(t *testing.T, data map[string]any) {
				uri, _ := data["uri"].(string)
				assert.NotContains(t, uri, "secret123456789")
				assert.Contains(t, uri, "id=100")
				assert.Contains(t, uri, "token=secr")
			},
		},
		{
			name:   "성공: 핸들러 에러는 에러 핸들러의 최종 상태 코드로 기록",
			target: "/missing",
			handler: func(c echo.Context) error {
				return echo.ErrNotFound
			},
			expectedStatus: http.StatusNotFound,
			verify: func(t *testing.T, data map[string]any) {
				assert.Equal(t, http.StatusNotFound, data["status"])
			},
		},
		{
			name:   "성공: 일반 에러는 500으로 기록",
			target: "/boom",
			handler: func(c echo.Context) error {
				return errors.New("boom")
			},
			expectedStatus: http.StatusInternalServerError,
			verify: func(t *testing.T, data map[string]any) {
				assert.Equal(t, http.StatusInternalServerError, data["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := captureLogs(t)

			e := echo.New()
			e.HTTPErrorHandler = httputil.ErrorHandler

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if id, ok := tt.headers[echo.HeaderXRequestID]; ok {
				c.Response().Header().Set(echo.HeaderXRequestID, id)
			}

			err := HTTPLogger()(tt.handler)(c)
			require.NoError(t, err, "에러는 미들웨어 내부에서 처리되어야 합니다")
			assert.Equal(t, tt.expectedStatus, rec.Code)

			entry := findEntry(hook, constants.LogMsgHTTPRequest)
			require.NotNil(t, entry, "요청 로그가 기록되어야 합니다")

			if id, ok := tt.headers[echo.HeaderXRequestID]; ok {
				assert.Equal(t, id, entry.Data["request_id"])
			}
			tt.verify(t, entry.Data)
		})
	}
}

func TestHTTPLogger_LogsOnPanic(t *testing.T) {
	hook := captureLogs(t)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), httptest.NewRecorder())

	h := HTTPLogger()(func(c echo.Context) error {
		panic("boom")
	})

	assert.Panics(t, func() { _ = h(c) })
	assert.NotNil(t, findEntry(hook, constants.LogMsgHTTPRequest), "패닉이 발생해도 요청 로그는 기록되어야 합니다")
}

// =============================================================================
// maskSensitiveQueryParams
// =============================================================================

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "민감 파라미터 없음",
			input:    "/api/info?id=100",
			expected: "/api/info?id=100",
		},
		{
			name:     "쿼리 없음",
			input:    "/health",
			expected: "/health",
		},
		{
			name:     "긴 토큰 마스킹",
			input:    "/api/info?token=secret123456789&id=100",
			expected: "/api/info?id=100&token=secr%2A%2A%2A6789",
		},
		{
			name:     "짧은 비밀번호 마스킹",
			input:    "/login?password=abc",
			expected: "/login?password=%2A%2A%2A",
		},
		{
			name:     "여러 파라미터 마스킹",
			input:    "/x?api_key=abcdefgh&secret=zz",
			expected: "/x?api_key=abcd%2A%2A%2A&secret=%2A%2A%2A",
		},
		{
			name:     "파싱 실패 시 원본 반환",
			input:    "/x?%zz",
			expected: "/x?%zz",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.input))
		})
	}
}
