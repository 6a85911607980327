package health

import "time"

// Clock 현재 시각을 제공합니다. 테스트에서는 고정된 시각을 반환하는 구현으로 대체합니다.
type Clock interface {
	Now() time.Time
}

// SystemClock 시스템 시계를 사용하는 Clock 구현체입니다.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
