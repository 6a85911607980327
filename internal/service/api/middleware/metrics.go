package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// metricsNamespace 모든 메트릭 이름의 접두사
	metricsNamespace = "cdx"

	// routeUnmatched 등록된 라우트와 일치하지 않는 요청의 route 레이블 값.
	// 요청 경로를 그대로 레이블로 사용하면 레이블 카디널리티가 무한히 증가할 수 있습니다.
	routeUnmatched = "unmatched"

	// methodOther 표준 HTTP 메서드가 아닌 요청의 method 레이블 값
	methodOther = "other"
)

var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// Metrics HTTP 요청 메트릭 수집기입니다.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewMetrics 수집기를 생성하고 reg에 등록합니다.
// 같은 Registerer에 두 번 등록하면 패닉이 발생합니다.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		panic(constants.PanicMsgMetricsRegistererRequired)
	}

	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "처리된 HTTP 요청 수",
		}, []string{"method", "route", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP 요청 처리 시간(초)",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "현재 처리 중인 HTTP 요청 수",
		}),
	}
}

// Middleware 요청 수, 처리 시간, 동시 처리 수를 기록하는 미들웨어를 반환합니다.
//
// 핸들러가 에러를 반환한 경우 응답은 아직 기록되지 않았으므로
// 에러로부터 최종 상태 코드를 계산합니다.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.inFlight.Inc()
			defer m.inFlight.Dec()

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			route := c.Path()
			if route == "" {
				route = routeUnmatched
			}

			method := methodLabel(c.Request().Method)
			status := statusFromResult(c, err)

			m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())

			return err
		}
	}
}

// methodLabel 클라이언트가 임의로 정한 메서드가 레이블 값으로 늘어나지 않도록 methodOther로 묶습니다.
func methodLabel(method string) string {
	if _, ok := knownMethods[method]; ok {
		return method
	}
	return methodOther
}

func statusFromResult(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	return http.StatusInternalServerError
}
