// Package scheduler contém os jobs agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/infrastructure/repository"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/usecases/ranking"
	"github.com/vfg2006/order-booker-api/internal/usecases/reporting"
	"golang.org/x/sync/errgroup"
)

type OBRankingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// OBRankingService recalcula diariamente o ranking mensal de order bookers
// a partir dos pedidos do mês até ontem.
type OBRankingService struct {
	scheduler           *gocron.Scheduler
	orderRepo           repository.OrderRepository
	orderBookerRepo     repository.OrderBookerRepository
	targetRepo          repository.TargetRepository
	rankingRepo         repository.OBRankingRepository
	catalog             domain.Catalog
	config              OBRankingConfig
	location            *time.Location
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewOBRankingService(
	orderRepo repository.OrderRepository,
	orderBookerRepo repository.OrderBookerRepository,
	targetRepo repository.TargetRepository,
	rankingRepo repository.OBRankingRepository,
	catalog domain.Catalog,
	cfg *config.Config,
) *OBRankingService {
	rankingConfig := OBRankingConfig{
		CronSchedule: cfg.OBRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.OBRankingSync.Enabled,
	}

	location := cfg.App.Location()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
		"timezone":      location.String(),
	}).Info("Configuração do agendador do ranking de order bookers carregada")

	return &OBRankingService{
		scheduler:       gocron.NewScheduler(location),
		orderRepo:       orderRepo,
		orderBookerRepo: orderBookerRepo,
		targetRepo:      targetRepo,
		rankingRepo:     rankingRepo,
		catalog:         catalog,
		config:          rankingConfig,
		location:        location,
		now:             time.Now,
	}
}

func (s *OBRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking de order bookers desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de order bookers")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateOBRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de order bookers")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de order bookers: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de order bookers")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *OBRankingService) UpdateOBRanking(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do ranking de order bookers já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização do ranking de order bookers")

	if _, err := s.processOBRankingWithDate(ctx, s.now().In(s.location)); err != nil {
		return err
	}

	logrus.Info("Atualização do ranking de order bookers concluída")

	return nil
}

// processOBRankingWithDate calcula o ranking do mês de ontem em relação a processingDate
func (s *OBRankingService) processOBRankingWithDate(ctx context.Context, processingDate time.Time) ([]*domain.OBRankingItem, error) {
	yesterday := processingDate.AddDate(0, 0, -1)
	month := yesterday.Format(ranking.MonthLayout)
	window := reporting.MonthToDateWindow(yesterday)

	var (
		orders       []*domain.Order
		orderBookers []*domain.OrderBooker
		targets      []*domain.BrandTarget
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		orders, err = s.orderRepo.List(gctx, &domain.OrderFilters{StartDate: window.Start, EndDate: window.End})
		return err
	})

	g.Go(func() error {
		var err error
		orderBookers, err = s.orderBookerRepo.List(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		targets, err = s.targetRepo.ListAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("OBRankingService: Erro ao carregar dados do mês")
		return nil, err
	}

	rollups := reporting.RollupByOrderBooker(
		reporting.FilterByWindow(orders, window),
		s.catalog,
		orderBookers,
		domain.NewTargetRegistry(targets),
	)

	rankingsBeforeUpdate := s.previousRankings(ctx, rollups, month)

	updatedRankings := make([]*domain.OBRankingItem, 0, len(rollups))
	for _, rollup := range rollups {
		updatedRankings = append(updatedRankings, &domain.OBRankingItem{
			OBContact:   rollup.OBContact,
			Month:       month,
			Name:        rollup.Name,
			TSM:         rollup.TSM,
			Achievement: rollup.TotalAchievement,
			Target:      rollup.TotalTarget,
			Percentage:  rollup.Percentage,
		})
	}

	s.updatePositions(updatedRankings, rankingsBeforeUpdate)

	if err := s.rankingRepo.SaveOrUpdate(ctx, updatedRankings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar ranking de order bookers atualizado")
		return updatedRankings, err
	}

	logrus.WithFields(logrus.Fields{
		"month":         month,
		"order_bookers": len(updatedRankings),
	}).Info("Ranking de order bookers atualizado")

	return updatedRankings, nil
}

// previousRankings busca a posição gravada de cada order booker no mês.
// Falhas individuais só fazem o order booker ser tratado como novo no ranking.
func (s *OBRankingService) previousRankings(
	ctx context.Context,
	rollups []*domain.OrderBookerAchievement,
	month string,
) map[string]*domain.OBRankingItem {
	wg := sync.WaitGroup{}
	rankingBeforeUpdate := make(chan domain.OBRankingItem, len(rollups))

	for _, rollup := range rollups {
		wg.Add(1)

		go func(obContact string) {
			defer wg.Done()

			item, err := s.rankingRepo.GetByOBContact(ctx, obContact, month)
			if err != nil {
				logrus.WithError(err).WithField("ob_contact", obContact).Error("OBRankingService: Erro ao buscar ranking anterior")
				return
			}

			if item != nil {
				rankingBeforeUpdate <- *item
			}
		}(rollup.OBContact)
	}

	wg.Wait()
	close(rankingBeforeUpdate)

	rankingsBeforeUpdate := make(map[string]*domain.OBRankingItem, len(rollups))
	for item := range rankingBeforeUpdate {
		if item.OBContact == "" {
			continue
		}
		rankingsBeforeUpdate[item.OBContact] = &item
	}

	return rankingsBeforeUpdate
}

func (*OBRankingService) updatePositions(
	updatedRankings []*domain.OBRankingItem,
	rankingsBeforeUpdate map[string]*domain.OBRankingItem,
) {
	sort.SliceStable(updatedRankings, func(i, j int) bool {
		if updatedRankings[i].Achievement != updatedRankings[j].Achievement {
			return updatedRankings[i].Achievement > updatedRankings[j].Achievement
		}
		return updatedRankings[i].OBContact < updatedRankings[j].OBContact
	})

	for i, item := range updatedRankings {
		item.Position = i + 1

		rankingBefore, exists := rankingsBeforeUpdate[item.OBContact]
		if exists {
			item.PositionChange = rankingBefore.Position - item.Position
			item.PreviousPosition = rankingBefore.Position
		}
	}
}

// TriggerManualSync inicia manualmente uma atualização do ranking
func (s *OBRankingService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do ranking de order bookers já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking de order bookers")
	go func() {
		if err := s.UpdateOBRanking(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de order bookers")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *OBRankingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
