package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/cd-exercise-api/internal/service/api/model/response"
	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs 전역 로거의 출력을 테스트 훅으로 가로챕니다.
// 전역 상태를 변경하므로 이 헬퍼를 사용하는 테스트는 t.Parallel()을 사용할 수 없습니다.
func captureLogs(t *testing.T) *test.Hook {
	t.Helper()

	logger := applog.StandardLogger()
	origHooks := logger.ReplaceHooks(make(logrus.LevelHooks))
	origOut := logger.Out
	origLevel := logger.GetLevel()

	logger.SetOutput(io.Discard)
	logger.SetLevel(applog.TraceLevel)
	hook := test.NewLocal(logger)

	t.Cleanup(func() {
		logger.ReplaceHooks(origHooks)
		logger.SetOutput(origOut)
		logger.SetLevel(origLevel)
	})

	return hook
}

// =============================================================================
// Error Handler Tests
// =============================================================================

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		err            error
		expectedStatus int
		expectedBody   string
		expectedLevel  logrus.Level
	}{
		{
			name:           "404 Not Found_기본 메시지 대체",
			method:         http.MethodGet,
			err:            echo.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"result_code":404,"message":"요청한 리소스를 찾을 수 없습니다"}`,
			expectedLevel:  logrus.WarnLevel,
		},
		{
			name:           "404 Not Found_커스텀 메시지 유지",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusNotFound, "Custom Check"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"result_code":404,"message":"Custom Check"}`,
			expectedLevel:  logrus.WarnLevel,
		},
		{
			name:           "405 Method Not Allowed",
			method:         http.MethodPost,
			err:            echo.ErrMethodNotAllowed,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   `{"result_code":405,"message":"허용되지 않은 HTTP 메서드입니다"}`,
			expectedLevel:  logrus.WarnLevel,
		},
		{
			name:           "413 Request Entity Too Large",
			method:         http.MethodPost,
			err:            echo.ErrStatusRequestEntityTooLarge,
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedBody:   `{"result_code":413,"message":"요청 본문이 너무 큽니다"}`,
			expectedLevel:  logrus.WarnLevel,
		},
		{
			name:           "429 Too Many Requests_ErrorResponse 타입 메시지",
			method:         http.MethodGet,
			err:            NewTooManyRequestsError("잠시 후 다시 시도"),
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"result_code":429,"message":"잠시 후 다시 시도"}`,
			expectedLevel:  logrus.WarnLevel,
		},
		{
			name:           "400 Bad Request_메시지 없는 에러",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusBadRequest, nil),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"result_code":400,"message":"Bad Request"}`,
			expectedLevel:  logrus.WarnLevel,
		},
		{
			name:           "500 Internal Server Error_일반 에러",
			method:         http.MethodGet,
			err:            errors.New("database connection failed"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`,
			expectedLevel:  logrus.ErrorLevel,
		},
		{
			name:           "500 Internal Server Error_래핑된 HTTPError",
			method:         http.MethodGet,
			err:            fmt.Errorf("wrapped: %w", echo.ErrNotFound),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"result_code":404,"message":"요청한 리소스를 찾을 수 없습니다"}`,
			expectedLevel:  logrus.WarnLevel,
		},
		{
			name:           "503 Service Unavailable_내부 메시지 숨김",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusServiceUnavailable, "upstream db down"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"result_code":503,"message":"내부 서버 오류가 발생했습니다"}`,
			expectedLevel:  logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := captureLogs(t)

			e := echo.New()
			req := httptest.NewRequest(tt.method, "/test", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())

			entry := hook.LastEntry()
			require.NotNil(t, entry, "에러 로그가 기록되어야 합니다")
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, tt.expectedStatus, entry.Data["status_code"])
			assert.Equal(t, "/test", entry.Data["path"])
			assert.Equal(t, "api.error_handler", entry.Data["component"])
		})
	}
}

func TestErrorHandler_HeadRequest(t *testing.T) {
	captureLogs(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String(), "HEAD 요청은 본문이 없어야 합니다")
}

func TestErrorHandler_Committed(t *testing.T) {
	hook := captureLogs(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.String(http.StatusOK, "already sent"))

	ErrorHandler(errors.New("late error"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already sent", rec.Body.String(), "이미 전송된 응답은 변경되지 않아야 합니다")
	assert.Len(t, hook.AllEntries(), 1, "응답 전송 여부와 관계없이 로그는 기록되어야 합니다")
}

// =============================================================================
// Response Constructor Tests
// =============================================================================

func TestNewErrorConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"NotFound", NewNotFoundError("a"), http.StatusNotFound},
		{"TooManyRequests", NewTooManyRequestsError("b"), http.StatusTooManyRequests},
		{"InternalServer", NewInternalServerError("c"), http.StatusInternalServerError},
		{"Custom", NewError(http.StatusTeapot, "d"), http.StatusTeapot},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var he *echo.HTTPError
			require.True(t, errors.As(tt.err, &he))
			assert.Equal(t, tt.expected, he.Code)

			resp, ok := he.Message.(response.ErrorResponse)
			require.True(t, ok, "메시지는 ErrorResponse 타입이어야 합니다")
			assert.Equal(t, tt.expected, resp.ResultCode)
		})
	}
}
