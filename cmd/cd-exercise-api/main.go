package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/darkkaiser/cd-exercise-api/internal/config"
	"github.com/darkkaiser/cd-exercise-api/internal/health"
	"github.com/darkkaiser/cd-exercise-api/internal/pkg/version"
	"github.com/darkkaiser/cd-exercise-api/internal/service"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api"
	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title CD Exercise API
// @version 1.0.0
// @description 지속적 배포(CD) 실습을 위한 최소한의 웹 API입니다.
// @description
// @description ## 엔드포인트
// @description - 환영 메시지와 버전/정보 조회
// @description - 쿠버네티스 스타일 헬스 체크 (health, readiness, liveness)

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const (
	banner = `
   ____ ____    _____                    _
  / ___|  _ \  | ____|_  _____ _ __ ___(_)___  ___
 | |   | | | | |  _| \ \/ / _ \ '__/ __| / __|/ _ \
 | |___| |_| | | |___ >  <  __/ | | (__| \__ \  __/
  \____|____/  |_____/_/\_\___|_|  \___|_|___/\___|
                                                  %s
--------------------------------------------------------------------------------
`
)

func main() {
	// 서버 기동 시각. uptime 계산의 기준이 된다.
	startTime := time.Now()

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(applog.NewOptionsForEnvironment(config.AppName, appConfig.Environment))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug())

	// 아스키아트 출력(폰트:standard)
	fmt.Printf(banner, appConfig.Version)

	applog.WithComponentAndFields("main", log.Fields{
		"version":     appConfig.Version,
		"build":       version.Get().String(),
		"environment": appConfig.Environment,
		"port":        appConfig.HTTP.ListenPort,
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	reporter := health.NewReporter(startTime, health.SystemClock{})
	apiService := api.NewService(appConfig, reporter)

	// 서비스 종료 요청용 context와 종료 대기용 WaitGroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			appLogCloser.Close()
			os.Exit(1)
		}
	}

	// SIGINT/SIGTERM 수신 또는 서비스의 자체 종료(포트 바인딩 실패 등)를 기다린다.
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	servicesDone := make(chan struct{})
	go func() {
		serviceStopWG.Wait()
		close(servicesDone)
	}()

	applog.WithComponent("main").Info("서버 가동 완료")

	if !awaitTermination(termC, servicesDone) {
		cancel()
		<-servicesDone

		applog.WithComponentAndFields("main", log.Fields{
			"error": firstServiceError(services),
		}).Error("서비스가 예기치 않게 종료되어 프로그램을 종료합니다")

		appLogCloser.Close()
		os.Exit(1)
	}

	applog.WithComponent("main").Info("종료 신호 수신. 서비스를 중지합니다")
	cancel()
	<-servicesDone
}

// awaitTermination 종료 신호를 받으면 true, 그 전에 모든 서비스가 스스로 멈추면 false를 반환합니다.
func awaitTermination(termC <-chan os.Signal, servicesDone <-chan struct{}) bool {
	select {
	case <-termC:
		return true
	case <-servicesDone:
		return false
	}
}

func firstServiceError(services []service.Service) error {
	for _, s := range services {
		if err := s.Err(); err != nil {
			return err
		}
	}
	return nil
}
