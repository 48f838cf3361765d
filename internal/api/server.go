package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/internal/api/handler"
	"github.com/vfg2006/order-booker-api/internal/api/handler/router"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/usecases/assigning"
	"github.com/vfg2006/order-booker-api/internal/usecases/authenticating"
	"github.com/vfg2006/order-booker-api/internal/usecases/configuring"
	"github.com/vfg2006/order-booker-api/internal/usecases/ordering"
	"github.com/vfg2006/order-booker-api/internal/usecases/ranking"
	"github.com/vfg2006/order-booker-api/internal/usecases/reporting"
	"github.com/vfg2006/order-booker-api/internal/usecases/targeting"
	"github.com/vfg2006/order-booker-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Ordering      ordering.OrderingService
	Reporting     reporting.ReportingService
	Ranking       ranking.RankingService
	Assignment    assigning.AssignmentService
	Targets       targeting.TargetService
	Settings      configuring.SettingService
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
}

func New(config *config.Config, services Services) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Orders(services.Ordering)...),
		router.WithRoutes(handler.Reports(services.Reporting)...),
		router.WithRoutes(handler.OBRanking(services.Ranking)...),
		router.WithRoutes(handler.OrderBookers(services.Assignment)...),
		router.WithRoutes(handler.Targets(services.Targets)...),
		router.WithRoutes(handler.Settings(services.Settings)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(config.Server.SlowRequestThreshold()),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
