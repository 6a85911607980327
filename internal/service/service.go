// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 시작 후 context 취소로 종료되는 백그라운드 서비스입니다.
type Service interface {
	// Start 서비스를 비동기로 시작하고 즉시 반환합니다.
	// 서비스가 완전히 종료되면 serviceStopWG.Done()을 정확히 한 번 호출합니다.
	// 호출자는 Start 호출 전에 serviceStopWG.Add(1)을 수행해야 합니다.
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error

	// Err 종료 요청 없이 서비스가 멈췄다면 그 원인을 반환합니다.
	// 실행 중이거나 요청에 의해 정상 종료된 경우 nil입니다.
	Err() error
}
