package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/infrastructure/cache"
	"github.com/vfg2006/order-booker-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-booker-api/infrastructure/repository"
	"github.com/vfg2006/order-booker-api/internal/api"
	"github.com/vfg2006/order-booker-api/internal/api/handler"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/scheduler"
	"github.com/vfg2006/order-booker-api/internal/usecases/assigning"
	"github.com/vfg2006/order-booker-api/internal/usecases/authenticating"
	"github.com/vfg2006/order-booker-api/internal/usecases/configuring"
	"github.com/vfg2006/order-booker-api/internal/usecases/ordering"
	"github.com/vfg2006/order-booker-api/internal/usecases/ranking"
	"github.com/vfg2006/order-booker-api/internal/usecases/reporting"
	"github.com/vfg2006/order-booker-api/internal/usecases/targeting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	orderRepo := repository.NewOrderRepository(pgConn)
	draftRepo := repository.NewDraftRepository(pgConn)
	orderBookerRepo := repository.NewOrderBookerRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	settingRepo := repository.NewSettingRepository(pgConn)
	obRankingRepo := repository.NewOBRankingRepository(pgConn)

	reportCache := reportcache(cfg.Cache)

	catalog := domain.DefaultCatalog()

	authenticator := authenticating.NewService(cfg)
	orderingService := ordering.NewService(orderRepo, draftRepo, orderBookerRepo, reportCache, catalog, cfg)
	reportingService := reporting.NewService(orderRepo, orderBookerRepo, targetRepo, settingRepo, reportCache, catalog, cfg)
	rankingService := ranking.NewOBRankingService(obRankingRepo, cfg)
	assignmentService := assigning.NewService(orderBookerRepo, reportCache)
	targetService := targeting.NewService(targetRepo, orderBookerRepo, reportCache)
	settingService := configuring.NewService(settingRepo, reportCache)

	obRankingSyncService := scheduler.NewOBRankingService(orderRepo, orderBookerRepo, targetRepo, obRankingRepo, catalog, cfg)
	draftCleanupService := scheduler.NewDraftCleanupService(draftRepo, cfg)

	// Inicia os agendadores em background
	if err := obRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de order bookers")
	} else {
		logrus.Info("Agendador do ranking de order bookers iniciado com sucesso")
	}

	if err := draftCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de rascunhos")
	} else {
		logrus.Info("Agendador de limpeza de rascunhos iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Ordering:      orderingService,
		Reporting:     reportingService,
		Ranking:       rankingService,
		Assignment:    assignmentService,
		Targets:       targetService,
		Settings:      settingService,
		Authenticator: authenticator,
		CronJobs: handler.CronJobServices{
			OBRankingService:    obRankingSyncService,
			DraftCleanupService: draftCleanupService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// reportcache conecta no Redis; sem Redis os relatórios são calculados a cada requisição
func reportcache(cacheConfig config.Cache) cache.ReportCache {
	reportCache, err := cache.NewReportCache(cacheConfig)
	if err != nil {
		logrus.WithError(err).Warn("Cache de relatórios indisponível, seguindo sem cache")
		return cache.NewNoopReportCache()
	}

	return reportCache
}
