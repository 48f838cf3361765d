package ordering

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/infrastructure/cache"
	"github.com/vfg2006/order-booker-api/infrastructure/repository"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
	"github.com/vfg2006/order-booker-api/pkg/utils"
)

type OrderingService interface {
	Catalog() *domain.CatalogResponse
	SubmitOrder(ctx context.Context, request *domain.SubmitOrderRequest) (*domain.SubmitOrderResponse, error)
	ListOrders(ctx context.Context, filters *domain.OrderFilters) ([]*domain.Order, error)
	SaveDraft(ctx context.Context, draft *domain.Draft) (*domain.Draft, error)
	GetDraft(ctx context.Context, id string) (*domain.Draft, error)
	ResetOrders(ctx context.Context) (int64, error)
}

type Service struct {
	orderRepository       repository.OrderRepository
	draftRepository       repository.DraftRepository
	orderBookerRepository repository.OrderBookerRepository
	reportCache           cache.ReportCache
	catalog               domain.Catalog
	location              *time.Location
	now                   func() time.Time
}

func NewService(
	orderRepository repository.OrderRepository,
	draftRepository repository.DraftRepository,
	orderBookerRepository repository.OrderBookerRepository,
	reportCache cache.ReportCache,
	catalog domain.Catalog,
	cfg *config.Config,
) OrderingService {
	return &Service{
		orderRepository:       orderRepository,
		draftRepository:       draftRepository,
		orderBookerRepository: orderBookerRepository,
		reportCache:           reportCache,
		catalog:               catalog,
		location:              cfg.App.Location(),
		now:                   time.Now,
	}
}

func (s *Service) Catalog() *domain.CatalogResponse {
	return &domain.CatalogResponse{
		Categories: domain.Categories,
		SKUs:       s.catalog,
	}
}

func (s *Service) SubmitOrder(ctx context.Context, request *domain.SubmitOrderRequest) (*domain.SubmitOrderResponse, error) {
	if request == nil {
		return nil, NewOrderError(ErrEmptyOrder, apiErrors.ErrInvalidRequest, "Corpo do pedido ausente")
	}

	obContact := strings.TrimSpace(request.OBContact)
	if obContact == "" {
		return nil, NewOrderError(ErrOBContactRequired, apiErrors.ErrMissingRequiredData, "Contato do order booker é obrigatório")
	}

	route := strings.TrimSpace(request.Route)
	if route == "" {
		return nil, NewOrderErrorWithContact(ErrRouteRequired, apiErrors.ErrMissingRequiredData, obContact, "Selecione uma rota")
	}

	date, err := s.resolveDate(request.Date)
	if err != nil {
		return nil, NewOrderErrorWithContact(ErrInvalidDate, apiErrors.ErrInvalidFormat, obContact, "Data deve seguir o formato YYYY-MM-DD")
	}

	items, err := s.validateItems(request.Items)
	if err != nil {
		return nil, err
	}

	if err := validateShopCounts(request); err != nil {
		return nil, err
	}

	ob, err := s.orderBookerRepository.GetByContact(ctx, obContact)
	if err != nil {
		logrus.WithError(err).WithField("ob_contact", obContact).Error("Erro ao buscar order booker")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar order booker no banco de dados")
	}

	if ob == nil {
		return nil, NewOrderErrorWithContact(ErrOrderBookerNotFound, apiErrors.ErrOrderBookerNotFound, obContact, "Order booker não cadastrado")
	}

	// Order bookers sem rotas cadastradas aceitam qualquer rota
	if len(ob.Routes) > 0 && !ob.HasRoute(route) {
		return nil, NewOrderErrorWithContact(
			ErrRouteNotAssigned,
			apiErrors.ErrInvalidRoute,
			obContact,
			fmt.Sprintf("Rota %q não pertence ao order booker", route),
		)
	}

	totalShops := request.TotalShops
	if totalShops == 0 {
		totalShops = ob.TotalShops
	}

	order := &domain.Order{
		Date:                    date,
		TSM:                     ob.TSM,
		Town:                    ob.Town,
		Distributor:             ob.Distributor,
		OrderBooker:             ob.Name,
		OBContact:               ob.Contact,
		Route:                   route,
		TotalShops:              totalShops,
		VisitedShops:            request.VisitedShops,
		ProductiveShops:         request.ProductiveShops,
		CategoryProductiveShops: request.CategoryProductiveShops,
		Items:                   items,
	}

	totals := domain.CalculateCategoryTotals(order, s.catalog)
	grandTotal := totals.Sum()
	if grandTotal <= 0 {
		return nil, NewOrderErrorWithContact(ErrEmptyOrder, apiErrors.ErrEmptyOrder, obContact, "Informe ao menos uma quantidade")
	}

	reference, err := utils.GenerateID()
	if err != nil {
		return nil, NewOrderError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar referência do pedido")
	}
	order.Reference = reference

	saved, err := s.orderRepository.Insert(ctx, order)
	if err != nil {
		logrus.WithError(err).WithField("ob_contact", obContact).Error("Erro ao inserir pedido")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar pedido")
	}

	if request.DraftID != "" {
		if err := s.draftRepository.Delete(ctx, request.DraftID); err != nil {
			logrus.WithError(err).WithField("draft_id", request.DraftID).Warn("Pedido salvo mas rascunho não foi removido")
		}
	}

	s.invalidateReports(ctx)

	logrus.WithFields(logrus.Fields{
		"order_id":    saved.ID,
		"reference":   saved.Reference,
		"ob_contact":  saved.OBContact,
		"grand_total": utils.RoundWithTwoDecimalPlace(grandTotal),
	}).Info("Pedido enviado")

	return &domain.SubmitOrderResponse{
		ID:             saved.ID,
		Reference:      saved.Reference,
		SubmittedAt:    saved.SubmittedAt,
		CategoryTotals: totals,
		GrandTotal:     grandTotal,
		Message:        "Pedido enviado com sucesso",
	}, nil
}

// resolveDate usa a data local de hoje quando o pedido não informa
func (s *Service) resolveDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.now().In(s.location).Format(time.DateOnly), nil
	}

	date, err := utils.ParseDate(raw)
	if err != nil {
		return "", err
	}

	return date.Format(time.DateOnly), nil
}

func (s *Service) validateItems(items map[string]domain.OrderItem) (map[string]domain.OrderItem, error) {
	validated := make(map[string]domain.OrderItem, len(items))

	// ordem estável para que o primeiro erro reportado seja sempre o mesmo
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		item := items[id]
		item.SKUID = id

		if item.Cartons < 0 || item.Dozens < 0 || item.Pieces < 0 {
			return nil, NewOrderError(ErrNegativeQuantity, apiErrors.ErrInvalidQuantity, fmt.Sprintf("Quantidade negativa para o SKU %s", id))
		}

		if item.IsZero() {
			continue
		}

		sku, exists := s.catalog.Find(id)
		if !exists {
			return nil, NewOrderError(ErrUnknownSKU, apiErrors.ErrUnknownSKU, fmt.Sprintf("SKU %s não existe no catálogo", id))
		}

		if item.Dozens > 0 && !sku.AllowsDozens() {
			return nil, NewOrderError(ErrDozensNotAllowed, apiErrors.ErrInvalidQuantity, fmt.Sprintf("SKU %s não aceita dúzias", id))
		}

		validated[id] = item
	}

	return validated, nil
}

func validateShopCounts(request *domain.SubmitOrderRequest) error {
	if request.TotalShops < 0 || request.VisitedShops < 0 || request.ProductiveShops < 0 {
		return NewOrderError(ErrInvalidShopCounts, apiErrors.ErrInvalidShopCounts, "Contagem de lojas não pode ser negativa")
	}

	if request.ProductiveShops > request.VisitedShops {
		return NewOrderError(ErrInvalidShopCounts, apiErrors.ErrInvalidShopCounts, "Lojas produtivas não podem exceder as visitadas")
	}

	for category, shops := range request.CategoryProductiveShops {
		if !category.IsValid() {
			return NewOrderError(ErrUnknownCategory, apiErrors.ErrInvalidCategory, fmt.Sprintf("Categoria %q desconhecida", category))
		}
		if shops < 0 || shops > request.ProductiveShops {
			return NewOrderError(ErrInvalidShopCounts, apiErrors.ErrInvalidShopCounts, fmt.Sprintf("Lojas produtivas inválidas para %s", category))
		}
	}

	return nil
}

func (s *Service) ListOrders(ctx context.Context, filters *domain.OrderFilters) ([]*domain.Order, error) {
	orders, err := s.orderRepository.List(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar pedidos")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar pedidos")
	}
	return orders, nil
}

// SaveDraft grava o pedido em andamento. Sem id, um novo é gerado.
func (s *Service) SaveDraft(ctx context.Context, draft *domain.Draft) (*domain.Draft, error) {
	if draft == nil || draft.Data == nil {
		return nil, NewOrderError(ErrDraftRequired, apiErrors.ErrMissingRequiredData, "Dados do rascunho são obrigatórios")
	}

	draft.ID = strings.TrimSpace(draft.ID)
	if draft.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewOrderError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador do rascunho")
		}
		draft.ID = id
	}

	saved, err := s.draftRepository.Save(ctx, draft)
	if err != nil {
		logrus.WithError(err).WithField("draft_id", draft.ID).Error("Erro ao salvar rascunho")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar rascunho")
	}

	return saved, nil
}

func (s *Service) GetDraft(ctx context.Context, id string) (*domain.Draft, error) {
	draft, err := s.draftRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("draft_id", id).Error("Erro ao buscar rascunho")
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar rascunho")
	}

	if draft == nil {
		return nil, NewOrderError(ErrDraftNotFound, apiErrors.ErrDraftNotFound, "Rascunho não encontrado")
	}

	return draft, nil
}

// ResetOrders apaga todos os pedidos e rascunhos
func (s *Service) ResetOrders(ctx context.Context) (int64, error) {
	deleted, err := s.orderRepository.DeleteAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao resetar pedidos")
		return 0, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao apagar pedidos")
	}

	s.invalidateReports(ctx)

	logrus.WithField("deleted", deleted).Warn("Pedidos e rascunhos apagados pelo admin")

	return deleted, nil
}

func (s *Service) invalidateReports(ctx context.Context) {
	if s.reportCache == nil {
		return
	}
	if err := s.reportCache.InvalidateAll(ctx); err != nil {
		logrus.WithError(err).Warn("Falha ao invalidar cache de relatórios")
	}
}
