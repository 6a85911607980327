package health

import (
	"context"
	"math"
	"time"
)

// 점검 항목 이름
const (
	CheckDatabase     = "database"
	CheckCache        = "cache"
	CheckDependencies = "dependencies"
)

// 상태 값
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
	StatusAlive    = "alive"
)

// HealthStatus 일반 헬스체크 결과
type HealthStatus struct {
	Status        string  `json:"status" example:"healthy"`
	UptimeSeconds float64 `json:"uptime_seconds" example:"12.34"`
}

// ReadinessStatus 준비 상태 점검 결과
type ReadinessStatus struct {
	Status string          `json:"status" example:"ready" enums:"ready,not_ready"`
	Checks map[string]bool `json:"checks"`
}

// Ready 모든 점검 항목이 통과했는지 여부를 반환합니다.
func (s ReadinessStatus) Ready() bool {
	return s.Status == StatusReady
}

// LivenessStatus 생존 상태 점검 결과
type LivenessStatus struct {
	Status    string  `json:"status" example:"alive"`
	Timestamp float64 `json:"timestamp" example:"1700000000.123456"`
}

// Reporter 프로세스 시작 시각과 점검 항목을 바탕으로 상태 정보를 계산합니다.
// 생성 이후에는 읽기 전용이므로 여러 고루틴에서 동시에 사용해도 안전합니다.
type Reporter struct {
	startTime time.Time
	clock     Clock
	checks    []Check
}

// NewReporter 새로운 Reporter를 생성합니다.
// clock이 nil이면 SystemClock을 사용하고, checks가 비어있으면 DefaultChecks()를 사용합니다.
func NewReporter(startTime time.Time, clock Clock, checks ...Check) *Reporter {
	if clock == nil {
		clock = SystemClock{}
	}
	if len(checks) == 0 {
		checks = DefaultChecks()
	}

	return &Reporter{
		startTime: startTime,
		clock:     clock,
		checks:    append([]Check(nil), checks...),
	}
}

// StartTime 프로세스 시작 시각을 반환합니다.
func (r *Reporter) StartTime() time.Time {
	return r.startTime
}

// Uptime 프로세스 시작 이후 경과 시간을 반환합니다. 시계가 역행하더라도 음수가 되지 않습니다.
func (r *Reporter) Uptime() time.Duration {
	d := r.clock.Now().Sub(r.startTime)
	if d < 0 {
		return 0
	}
	return d
}

// Health 일반 헬스체크 결과를 반환합니다.
func (r *Reporter) Health() HealthStatus {
	return HealthStatus{
		Status:        StatusHealthy,
		UptimeSeconds: math.Round(r.Uptime().Seconds()*100) / 100,
	}
}

// Readiness 모든 점검 항목을 실행하여 준비 상태를 반환합니다.
// 하나라도 실패하면 not_ready입니다.
func (r *Reporter) Readiness(ctx context.Context) ReadinessStatus {
	checks := make(map[string]bool, len(r.checks))

	ready := true
	for _, c := range r.checks {
		ok := c.Ready != nil && c.Ready(ctx)
		checks[c.Name] = ok
		if !ok {
			ready = false
		}
	}

	status := StatusReady
	if !ready {
		status = StatusNotReady
	}

	return ReadinessStatus{
		Status: status,
		Checks: checks,
	}
}

// Liveness 생존 상태를 반환합니다. timestamp는 현재 시각의 Unix epoch 초(소수점 포함)입니다.
func (r *Reporter) Liveness() LivenessStatus {
	return LivenessStatus{
		Status:    StatusAlive,
		Timestamp: float64(r.clock.Now().UnixNano()) / float64(time.Second),
	}
}
