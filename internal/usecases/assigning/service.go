// Package assigning mantém o cadastro de order bookers com TSM, distribuidor e rotas
package assigning

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/infrastructure/cache"
	"github.com/vfg2006/order-booker-api/infrastructure/repository"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
)

type AssignmentService interface {
	ListOrderBookers(ctx context.Context) ([]*domain.OrderBooker, error)
	GetOrderBooker(ctx context.Context, contact string) (*domain.OrderBooker, error)
	SaveOrderBooker(ctx context.Context, request *domain.SaveOrderBookerRequest) (*domain.OrderBooker, error)
	DeleteOrderBooker(ctx context.Context, id int64) error
	Reseed(ctx context.Context) (int, error)
}

type Service struct {
	orderBookerRepository repository.OrderBookerRepository
	reportCache           cache.ReportCache
}

func NewService(orderBookerRepository repository.OrderBookerRepository, reportCache cache.ReportCache) AssignmentService {
	return &Service{
		orderBookerRepository: orderBookerRepository,
		reportCache:           reportCache,
	}
}

func (s *Service) ListOrderBookers(ctx context.Context) ([]*domain.OrderBooker, error) {
	orderBookers, err := s.orderBookerRepository.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar order bookers")
		return nil, NewAssignmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar order bookers no banco de dados")
	}

	return orderBookers, nil
}

func (s *Service) GetOrderBooker(ctx context.Context, contact string) (*domain.OrderBooker, error) {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return nil, NewAssignmentError(ErrContactRequired, apiErrors.ErrMissingRequiredData, "Contato é obrigatório")
	}

	ob, err := s.orderBookerRepository.GetByContact(ctx, contact)
	if err != nil {
		logrus.WithError(err).WithField("contact", contact).Error("Erro ao buscar order booker")
		return nil, NewAssignmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar order booker")
	}

	if ob == nil {
		return nil, NewAssignmentErrorWithContact(ErrOrderBookerNotFound, apiErrors.ErrOrderBookerNotFound, contact, "Order booker não cadastrado")
	}

	return ob, nil
}

// SaveOrderBooker cria ou atualiza um order booker. Com id atualiza o registro; sem id faz upsert pelo contato.
func (s *Service) SaveOrderBooker(ctx context.Context, request *domain.SaveOrderBookerRequest) (*domain.OrderBooker, error) {
	if request == nil {
		return nil, NewAssignmentError(ErrContactRequired, apiErrors.ErrInvalidRequest, "Corpo da requisição ausente")
	}

	ob := &domain.OrderBooker{
		ID:          request.ID,
		Name:        strings.TrimSpace(request.Name),
		Contact:     strings.TrimSpace(request.Contact),
		Town:        strings.TrimSpace(request.Town),
		Distributor: strings.TrimSpace(request.Distributor),
		TSM:         strings.TrimSpace(request.TSM),
		TotalShops:  request.TotalShops,
		Routes:      normalizeRoutes(request.Routes),
	}

	if ob.Contact == "" {
		return nil, NewAssignmentError(ErrContactRequired, apiErrors.ErrMissingRequiredData, "Contato é obrigatório")
	}

	if ob.Name == "" {
		return nil, NewAssignmentErrorWithContact(ErrNameRequired, apiErrors.ErrMissingRequiredData, ob.Contact, "Nome é obrigatório")
	}

	if ob.TotalShops < 0 {
		return nil, NewAssignmentErrorWithContact(ErrNegativeTotalShops, apiErrors.ErrInvalidShopCounts, ob.Contact, "Total de lojas não pode ser negativo")
	}

	saved, err := s.orderBookerRepository.Save(ctx, ob)
	if err != nil {
		logrus.WithError(err).WithField("contact", ob.Contact).Error("Erro ao salvar order booker")
		return nil, NewAssignmentErrorWithContact(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, ob.Contact, "Falha ao salvar order booker")
	}

	if saved == nil {
		return nil, NewAssignmentErrorWithContact(ErrOrderBookerNotFound, apiErrors.ErrOrderBookerNotFound, ob.Contact, "Order booker não encontrado para atualização")
	}

	s.invalidateReports(ctx)

	logrus.WithFields(logrus.Fields{
		"id":      saved.ID,
		"contact": saved.Contact,
		"routes":  len(saved.Routes),
	}).Info("Order booker salvo")

	return saved, nil
}

func (s *Service) DeleteOrderBooker(ctx context.Context, id int64) error {
	deleted, err := s.orderBookerRepository.Delete(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("Erro ao apagar order booker")
		return NewAssignmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao apagar order booker")
	}

	if !deleted {
		return NewAssignmentError(ErrOrderBookerNotFound, apiErrors.ErrOrderBookerNotFound, "Order booker não encontrado")
	}

	s.invalidateReports(ctx)

	return nil
}

// Reseed substitui o cadastro inteiro pela lista padrão de order bookers
func (s *Service) Reseed(ctx context.Context) (int, error) {
	orderBookers := domain.DefaultOrderBookers()

	if err := s.orderBookerRepository.ReplaceAll(ctx, orderBookers); err != nil {
		logrus.WithError(err).Error("Erro ao recriar cadastro de order bookers")
		return 0, NewAssignmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao recriar order bookers")
	}

	s.invalidateReports(ctx)

	logrus.WithField("quantity", len(orderBookers)).Warn("Cadastro de order bookers recriado")

	return len(orderBookers), nil
}

// normalizeRoutes remove rotas vazias e repetidas mantendo a ordem
func normalizeRoutes(routes []string) []string {
	normalized := make([]string, 0, len(routes))
	seen := make(map[string]bool, len(routes))

	for _, route := range routes {
		route = strings.TrimSpace(route)
		if route == "" || seen[route] {
			continue
		}
		seen[route] = true
		normalized = append(normalized, route)
	}

	return normalized
}

func (s *Service) invalidateReports(ctx context.Context) {
	if err := s.reportCache.InvalidateAll(ctx); err != nil {
		logrus.WithError(err).Warn("Falha ao invalidar cache de relatórios")
	}
}
