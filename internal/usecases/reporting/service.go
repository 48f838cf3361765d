// Package reporting calcula a realização contra as metas por order booker, TSM e rota
package reporting

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/infrastructure/cache"
	"github.com/vfg2006/order-booker-api/infrastructure/repository"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
	"golang.org/x/sync/errgroup"
)

const (
	reportDashboard    = "dashboard"
	reportOrderBookers = "order-bookers"
	reportTSM          = "tsm"
	reportRoutes       = "routes"
)

type ReportingService interface {
	GetDashboard(ctx context.Context, filters *domain.ReportFilters) (*domain.Dashboard, error)
	GetOrderBookerReport(ctx context.Context, filters *domain.ReportFilters) ([]*domain.OrderBookerAchievement, error)
	GetTSMReport(ctx context.Context, filters *domain.ReportFilters) ([]*domain.TSMAchievement, error)
	GetRouteReport(ctx context.Context, filters *domain.ReportFilters) ([]*domain.RouteAchievement, error)
}

type Service struct {
	orderRepository       repository.OrderRepository
	orderBookerRepository repository.OrderBookerRepository
	targetRepository      repository.TargetRepository
	settingRepository     repository.SettingRepository
	reportCache           cache.ReportCache
	catalog               domain.Catalog
	location              *time.Location
	now                   func() time.Time
}

func NewService(
	orderRepository repository.OrderRepository,
	orderBookerRepository repository.OrderBookerRepository,
	targetRepository repository.TargetRepository,
	settingRepository repository.SettingRepository,
	reportCache cache.ReportCache,
	catalog domain.Catalog,
	cfg *config.Config,
) ReportingService {
	return &Service{
		orderRepository:       orderRepository,
		orderBookerRepository: orderBookerRepository,
		targetRepository:      targetRepository,
		settingRepository:     settingRepository,
		reportCache:           reportCache,
		catalog:               catalog,
		location:              cfg.App.Location(),
		now:                   time.Now,
	}
}

// snapshot é a leitura consistente usada numa agregação
type snapshot struct {
	orders       []*domain.Order
	orderBookers []*domain.OrderBooker
	registry     domain.TargetRegistry
	workingDays  int
}

func (s *Service) GetDashboard(ctx context.Context, filters *domain.ReportFilters) (*domain.Dashboard, error) {
	now := s.localNow()

	selected, err := ResolveWindow(filters, now)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey(reportDashboard, filters, now)
	cached := &domain.Dashboard{}
	if s.fromCache(ctx, key, cached) {
		return cached, nil
	}

	snap, err := s.loadSnapshot(ctx, filters, Window{})
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		Date:         now.Format(time.DateOnly),
		Today:        Summarize(FilterByWindow(snap.orders, TodayWindow(now)), s.catalog, snap.registry),
		MonthToDate:  Summarize(FilterByWindow(snap.orders, MonthToDateWindow(now)), s.catalog, snap.registry),
		Selected:     Summarize(FilterByWindow(snap.orders, selected), s.catalog, snap.registry),
		Filters:      filters,
		GeneratedAt:  s.now(),
		WorkingDays:  snap.workingDays,
		OrderBookers: len(snap.orderBookers),
	}

	s.toCache(ctx, key, dashboard)

	return dashboard, nil
}

func (s *Service) GetOrderBookerReport(ctx context.Context, filters *domain.ReportFilters) ([]*domain.OrderBookerAchievement, error) {
	now := s.localNow()

	window, err := ResolveWindow(filters, now)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey(reportOrderBookers, filters, now)
	cached := make([]*domain.OrderBookerAchievement, 0)
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	snap, err := s.loadSnapshot(ctx, filters, window)
	if err != nil {
		return nil, err
	}

	rollups := RollupByOrderBooker(FilterByWindow(snap.orders, window), s.catalog, snap.orderBookers, snap.registry)

	s.toCache(ctx, key, rollups)

	return rollups, nil
}

func (s *Service) GetTSMReport(ctx context.Context, filters *domain.ReportFilters) ([]*domain.TSMAchievement, error) {
	now := s.localNow()

	window, err := ResolveWindow(filters, now)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey(reportTSM, filters, now)
	cached := make([]*domain.TSMAchievement, 0)
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	snap, err := s.loadSnapshot(ctx, filters, window)
	if err != nil {
		return nil, err
	}

	rollups := RollupByTSM(FilterByWindow(snap.orders, window), s.catalog, snap.orderBookers, snap.registry)

	s.toCache(ctx, key, rollups)

	return rollups, nil
}

func (s *Service) GetRouteReport(ctx context.Context, filters *domain.ReportFilters) ([]*domain.RouteAchievement, error) {
	now := s.localNow()

	window, err := ResolveWindow(filters, now)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey(reportRoutes, filters, now)
	cached := make([]*domain.RouteAchievement, 0)
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	snap, err := s.loadSnapshot(ctx, filters, window)
	if err != nil {
		return nil, err
	}

	rollups := RollupByRoute(FilterByWindow(snap.orders, window), s.catalog)

	s.toCache(ctx, key, rollups)

	return rollups, nil
}

// ResolveWindow converte os filtros numa janela. Datas explícitas têm prioridade sobre o nome da janela.
func ResolveWindow(filters *domain.ReportFilters, now time.Time) (Window, error) {
	if filters == nil {
		return Window{}, nil
	}

	if filters.StartDate != nil || filters.EndDate != nil {
		if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
			return Window{}, NewReportError(ErrInvalidDateRange, apiErrors.ErrInvalidFilters, "Data inicial maior que a data final")
		}
		return Window{Start: filters.StartDate, End: filters.EndDate}, nil
	}

	switch strings.ToLower(strings.TrimSpace(filters.Window)) {
	case "", domain.WindowAll:
		return Window{}, nil
	case domain.WindowToday:
		return TodayWindow(now), nil
	case domain.WindowMTD:
		return MonthToDateWindow(now), nil
	default:
		return Window{}, NewReportError(ErrInvalidWindow, apiErrors.ErrInvalidFilters, "Janela deve ser today, mtd ou all")
	}
}

func (s *Service) loadSnapshot(ctx context.Context, filters *domain.ReportFilters, window Window) (*snapshot, error) {
	if filters == nil {
		filters = &domain.ReportFilters{}
	}

	var (
		orders       []*domain.Order
		orderBookers []*domain.OrderBooker
		targets      []*domain.BrandTarget
		workingDays  int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		orders, err = s.orderRepository.List(gctx, &domain.OrderFilters{
			OBContact: filters.OBContact,
			StartDate: window.Start,
			EndDate:   window.End,
		})
		return err
	})

	g.Go(func() error {
		var err error
		orderBookers, err = s.orderBookerRepository.List(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		targets, err = s.targetRepository.ListAll(gctx)
		return err
	})

	g.Go(func() error {
		setting, err := s.settingRepository.Get(gctx, domain.SettingTotalWorkingDays)
		if err != nil {
			return err
		}
		if setting != nil {
			days, convErr := strconv.Atoi(strings.TrimSpace(setting.Value))
			if convErr != nil {
				logrus.WithField("value", setting.Value).Warn("Valor inválido para total_working_days")
				return nil
			}
			workingDays = days
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Erro ao carregar dados para relatório")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao carregar dados do relatório")
	}

	orders = filterOrdersByTSM(orders, orderBookers, filters.TSM)
	directory := filterOrderBookers(orderBookers, filters)

	return &snapshot{
		orders:       orders,
		orderBookers: directory,
		registry:     buildRegistry(targets, directory, orders, filters),
		workingDays:  workingDays,
	}, nil
}

func filterOrderBookers(orderBookers []*domain.OrderBooker, filters *domain.ReportFilters) []*domain.OrderBooker {
	if filters.OBContact == "" && filters.TSM == "" {
		return orderBookers
	}

	filtered := make([]*domain.OrderBooker, 0, len(orderBookers))
	for _, ob := range orderBookers {
		if filters.OBContact != "" && ob.Contact != filters.OBContact {
			continue
		}
		if filters.TSM != "" && ob.TSM != filters.TSM {
			continue
		}
		filtered = append(filtered, ob)
	}
	return filtered
}

// filterOrdersByTSM mantém os pedidos cujo order booker pertence ao TSM no diretório atual.
// O TSM gravado no pedido só vale para contatos fora do diretório, igual ao RollupByOrderBooker.
func filterOrdersByTSM(orders []*domain.Order, orderBookers []*domain.OrderBooker, tsm string) []*domain.Order {
	if tsm == "" {
		return orders
	}

	tsmByContact := make(map[string]string, len(orderBookers))
	for _, ob := range orderBookers {
		if ob == nil {
			continue
		}
		if _, exists := tsmByContact[ob.Contact]; !exists {
			tsmByContact[ob.Contact] = ob.TSM
		}
	}

	filtered := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if order == nil {
			continue
		}
		orderTSM, exists := tsmByContact[order.OBContact]
		if !exists {
			orderTSM = order.TSM
		}
		if orderTSM == tsm {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// buildRegistry restringe as metas aos order bookers do recorte filtrado
func buildRegistry(
	targets []*domain.BrandTarget,
	directory []*domain.OrderBooker,
	orders []*domain.Order,
	filters *domain.ReportFilters,
) domain.TargetRegistry {
	if filters.OBContact == "" && filters.TSM == "" {
		return domain.NewTargetRegistry(targets)
	}

	allowed := make(map[string]bool, len(directory)+1)
	for _, ob := range directory {
		allowed[ob.Contact] = true
	}
	for _, order := range orders {
		allowed[order.OBContact] = true
	}
	if filters.OBContact != "" && filters.TSM == "" {
		allowed[filters.OBContact] = true
	}

	scoped := make([]*domain.BrandTarget, 0, len(targets))
	for _, target := range targets {
		if allowed[target.OBContact] {
			scoped = append(scoped, target)
		}
	}

	return domain.NewTargetRegistry(scoped)
}

func (s *Service) localNow() time.Time {
	return s.now().In(s.location)
}

func (s *Service) cacheKey(kind string, filters *domain.ReportFilters, now time.Time) cache.ReportKey {
	return cache.ReportKey{
		Kind:    kind,
		AsOf:    now.Format(time.DateOnly),
		Filters: filters,
	}
}

func (s *Service) fromCache(ctx context.Context, key cache.ReportKey, dest any) bool {
	found, err := s.reportCache.Get(ctx, key, dest)
	if err != nil {
		logrus.WithError(err).WithField("report", key.Kind).Warn("Falha ao ler cache de relatório")
		return false
	}
	return found
}

func (s *Service) toCache(ctx context.Context, key cache.ReportKey, value any) {
	if err := s.reportCache.Set(ctx, key, value); err != nil {
		logrus.WithError(err).WithField("report", key.Kind).Warn("Falha ao gravar cache de relatório")
	}
}
