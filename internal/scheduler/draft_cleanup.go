package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/infrastructure/repository"
	"github.com/vfg2006/order-booker-api/internal/config"
)

const defaultDraftRetentionDays = 7

type DraftCleanupConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// DraftCleanupService apaga rascunhos abandonados
type DraftCleanupService struct {
	scheduler           *gocron.Scheduler
	draftRepo           repository.DraftRepository
	config              DraftCleanupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeleted         int64
}

func NewDraftCleanupService(draftRepo repository.DraftRepository, cfg *config.Config) *DraftCleanupService {
	retention := cfg.DraftCleanup.RetentionDays
	if retention <= 0 {
		retention = defaultDraftRetentionDays
	}

	cleanupConfig := DraftCleanupConfig{
		CronSchedule:  cfg.DraftCleanup.CronSchedule,
		RetentionDays: retention,
		SyncEnabled:   cfg.DraftCleanup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cleanupConfig.CronSchedule,
		"retention_days": cleanupConfig.RetentionDays,
	}).Info("Configuração da limpeza de rascunhos carregada")

	return &DraftCleanupService{
		scheduler: gocron.NewScheduler(cfg.App.Location()),
		draftRepo: draftRepo,
		config:    cleanupConfig,
	}
}

func (s *DraftCleanupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Limpeza de rascunhos desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CleanupDrafts(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de rascunhos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de rascunhos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de rascunhos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DraftCleanupService) CleanupDrafts(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Limpeza de rascunhos já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	deleted, err := s.draftRepo.DeleteOlderThan(ctx, s.config.RetentionDays)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err == nil {
		s.lastDeleted = deleted
	}
	s.syncMutex.Unlock()

	if err != nil {
		return fmt.Errorf("erro ao apagar rascunhos antigos: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"deleted":        deleted,
		"retention_days": s.config.RetentionDays,
	}).Info("Limpeza de rascunhos concluída")

	return nil
}

func (s *DraftCleanupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de rascunhos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	go func() {
		if err := s.CleanupDrafts(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual de rascunhos")
		}
	}()
}

func (s *DraftCleanupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"retention_days":        s.config.RetentionDays,
		"last_deleted":           s.lastDeleted,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
