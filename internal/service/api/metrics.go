package api

import (
	"runtime"

	"github.com/darkkaiser/cd-exercise-api/internal/config"
	"github.com/darkkaiser/cd-exercise-api/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// newMetricsRegistry 서비스 전용 Prometheus Registry를 생성합니다.
//
// 전역 DefaultRegisterer 대신 서비스마다 독립된 Registry를 사용하므로
// 같은 프로세스에서 서비스를 여러 번 생성해도 중복 등록 패닉이 발생하지 않습니다.
func newMetricsRegistry(appConfig *config.AppConfig, reporter *health.Reporter) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),

		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "cdx",
			Name:      "uptime_seconds",
			Help:      "프로세스 시작 이후 경과 시간(초)",
		}, func() float64 {
			return reporter.Uptime().Seconds()
		}),

		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "cdx",
			Name:      "build_info",
			Help:      "애플리케이션 빌드 정보. 값은 항상 1입니다.",
			ConstLabels: prometheus.Labels{
				"version":     appConfig.Version,
				"environment": appConfig.Environment,
				"go_version":  runtime.Version(),
			},
		}, func() float64 { return 1 }),
	)

	return reg
}
