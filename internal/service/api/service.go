package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/cd-exercise-api/docs"
	"github.com/darkkaiser/cd-exercise-api/internal/config"
	"github.com/darkkaiser/cd-exercise-api/internal/health"
	apperrors "github.com/darkkaiser/cd-exercise-api/internal/pkg/errors"
	"github.com/darkkaiser/cd-exercise-api/internal/service"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/constants"
	healthhandler "github.com/darkkaiser/cd-exercise-api/internal/service/api/handler/health"
	"github.com/darkkaiser/cd-exercise-api/internal/service/api/handler/system"
	appmiddleware "github.com/darkkaiser/cd-exercise-api/internal/service/api/middleware"
	applog "github.com/darkkaiser/cd-exercise-api/pkg/log"
	"github.com/labstack/echo/v4"
)

var _ service.Service = (*Service)(nil)

// Service 환영/버전/헬스체크 엔드포인트를 제공하는 HTTP 서버를 실행합니다.
//
// context가 취소되면 DefaultShutdownTimeout 안에서 Graceful Shutdown을 수행합니다.
// 포트 바인딩 실패처럼 서버가 스스로 멈춘 경우에는 Err()로 원인을 확인할 수 있습니다.
type Service struct {
	appConfig *config.AppConfig
	reporter  *health.Reporter

	mu      sync.Mutex
	running bool
	exitErr error
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, reporter *health.Reporter) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if reporter == nil {
		panic(constants.PanicMsgHealthReporterRequired)
	}

	return &Service{
		appConfig: appConfig,
		reporter:  reporter,
	}
}

// Start HTTP 서버를 고루틴에서 실행하고 즉시 반환합니다.
//
// 이미 실행 중이면 경고만 남기고 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := applog.WithComponent(constants.ComponentService)
	logger.Info(constants.LogMsgServiceStarting)

	if s.running {
		logger.Warn(constants.LogMsgServiceAlreadyStarted)
		serviceStopWG.Done()
		return nil
	}

	s.running = true
	s.exitErr = nil

	go s.run(serviceStopCtx, serviceStopWG)

	logger.Info(constants.LogMsgServiceStarted)

	return nil
}

// Running 서비스 실행 여부를 반환합니다.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Err 종료 요청 없이 HTTP 서버가 멈춘 원인을 반환합니다.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitErr
}

func (s *Service) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	port := s.appConfig.HTTP.ListenPort
	e := s.setupServer()

	serveErrC := make(chan error, 1)
	go func() {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"port": port,
		}).Info(constants.LogMsgServiceHTTPServerStarting)

		serveErrC <- e.Start(fmt.Sprintf(":%d", port))
	}()

	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
		s.shutdown(e, serveErrC)
		s.stop(nil)

	case err := <-serveErrC:
		exitErr := apperrors.Wrapf(err, apperrors.System, "HTTP 서버(:%d)가 종료 요청 없이 멈췄습니다", port)
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"port":  port,
			"error": exitErr,
		}).Error(constants.LogMsgServiceHTTPServerFatalError)
		s.stop(exitErr)
	}
}

// setupServer 미들웨어와 라우트가 모두 등록된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	registry := newMetricsRegistry(s.appConfig, s.reporter)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug(),
		AllowOrigins: s.appConfig.HTTP.AllowOrigins,
		Metrics:      appmiddleware.NewMetrics(registry),
	})

	RegisterRoutes(e, system.NewHandler(s.appConfig), healthhandler.NewHandler(s.reporter), registry)

	return e
}

// shutdown 진행 중인 요청을 DefaultShutdownTimeout까지 기다린 뒤 서버를 닫습니다.
func (s *Service) shutdown(e *echo.Echo, serveErrC <-chan error) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	if err := <-serveErrC; err != nil && !errors.Is(err, http.ErrServerClosed) {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
		return
	}

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
}

func (s *Service) stop(exitErr error) {
	s.mu.Lock()
	s.running = false
	s.exitErr = exitErr
	s.mu.Unlock()

	if exitErr != nil {
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		return
	}
	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
