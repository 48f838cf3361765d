package ordering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/order-booker-api/infrastructure/cache/mocks"
	"github.com/vfg2006/order-booker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var testCatalog = domain.Catalog{
	{ID: "kg-10", Category: domain.CategoryKiteGlow, UnitsPerCarton: 144, UnitsPerDozen: 12},
	{ID: "dwb-1", Category: domain.CategoryDWB, UnitsPerCarton: 72, UnitsPerDozen: 0},
}

type orderingMocks struct {
	orders       *mocks.MockOrderRepository
	drafts       *mocks.MockDraftRepository
	orderBookers *mocks.MockOrderBookerRepository
	cache        *cachemocks.MockReportCache
}

func newTestService(t *testing.T) (*Service, *orderingMocks) {
	ctrl := gomock.NewController(t)

	m := &orderingMocks{
		orders:       mocks.NewMockOrderRepository(ctrl),
		drafts:       mocks.NewMockDraftRepository(ctrl),
		orderBookers: mocks.NewMockOrderBookerRepository(ctrl),
		cache:        cachemocks.NewMockReportCache(ctrl),
	}

	service := &Service{
		orderRepository:       m.orders,
		draftRepository:       m.drafts,
		orderBookerRepository: m.orderBookers,
		reportCache:           m.cache,
		catalog:               testCatalog,
		location:              time.UTC,
		now: func() time.Time {
			return time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)
		},
	}

	return service, m
}

func validRequest() *domain.SubmitOrderRequest {
	return &domain.SubmitOrderRequest{
		Date:            "2024-03-15",
		OBContact:       "P-01",
		Route:           "Route 1",
		VisitedShops:    20,
		ProductiveShops: 12,
		CategoryProductiveShops: map[domain.Category]int{
			domain.CategoryKiteGlow: 10,
		},
		Items: map[string]domain.OrderItem{
			"kg-10": {Cartons: 2, Dozens: 3, Pieces: 6},
		},
	}
}

func registeredOB() *domain.OrderBooker {
	return &domain.OrderBooker{
		ID:          1,
		Name:        "Ali",
		Contact:     "P-01",
		Town:        "Peshawar",
		Distributor: "Khan Traders",
		TSM:         "Hassan",
		TotalShops:  45,
		Routes:      []string{"Route 1", "Route 2"},
	}
}

func TestService_SubmitOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Pedido válido é gravado com os dados do order booker", func(t *testing.T) {
		service, m := newTestService(t)
		request := validRequest()
		request.DraftID = "dr4ft1"

		m.orderBookers.EXPECT().GetByContact(gomock.Any(), "P-01").Return(registeredOB(), nil)
		m.orders.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				assert.Equal(t, "Hassan", order.TSM)
				assert.Equal(t, "Peshawar", order.Town)
				assert.Equal(t, "Khan Traders", order.Distributor)
				assert.Equal(t, "Ali", order.OrderBooker)
				assert.Equal(t, 45, order.TotalShops)
				assert.Equal(t, "2024-03-15", order.Date)
				assert.Len(t, order.Reference, 6)
				assert.Equal(t, "kg-10", order.Items["kg-10"].SKUID)

				order.ID = 99
				return order, nil
			})
		m.drafts.EXPECT().Delete(gomock.Any(), "dr4ft1").Return(nil)
		m.cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)

		response, err := service.SubmitOrder(ctx, request)
		require.NoError(t, err)

		assert.Equal(t, int64(99), response.ID)
		// (2*144 + 3*12 + 6) / 144
		assert.InDelta(t, 330.0/144.0, response.CategoryTotals[domain.CategoryKiteGlow], 1e-9)
		assert.InDelta(t, 330.0/144.0, response.GrandTotal, 1e-9)
		assert.Equal(t, 0.0, response.CategoryTotals[domain.CategoryDWB])
	})

	t.Run("Sem data usa o dia local", func(t *testing.T) {
		service, m := newTestService(t)
		service.location = time.FixedZone("PKT", 5*60*60)

		request := validRequest()
		request.Date = ""

		m.orderBookers.EXPECT().GetByContact(gomock.Any(), "P-01").Return(registeredOB(), nil)
		m.orders.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				// 22h UTC já é o dia seguinte em PKT
				assert.Equal(t, "2024-03-16", order.Date)
				return order, nil
			})
		m.cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)

		_, err := service.SubmitOrder(ctx, request)
		require.NoError(t, err)
	})

	t.Run("Falha ao remover rascunho não desfaz o pedido", func(t *testing.T) {
		service, m := newTestService(t)
		request := validRequest()
		request.DraftID = "abc123"

		m.orderBookers.EXPECT().GetByContact(gomock.Any(), "P-01").Return(registeredOB(), nil)
		m.orders.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				return order, nil
			})
		m.drafts.EXPECT().Delete(gomock.Any(), "abc123").Return(errors.New("timeout"))
		m.cache.EXPECT().InvalidateAll(gomock.Any()).Return(errors.New("redis down"))

		response, err := service.SubmitOrder(ctx, request)
		require.NoError(t, err)
		assert.NotEmpty(t, response.Reference)
	})

	tests := []struct {
		name      string
		mutate    func(r *domain.SubmitOrderRequest)
		lookup    bool
		ob        *domain.OrderBooker
		expectErr error
		code      string
	}{
		{
			name:      "Contato ausente",
			mutate:    func(r *domain.SubmitOrderRequest) { r.OBContact = "  " },
			expectErr: ErrOBContactRequired,
			code:      apiErrors.ErrMissingRequiredData,
		},
		{
			name:      "Rota ausente",
			mutate:    func(r *domain.SubmitOrderRequest) { r.Route = "" },
			expectErr: ErrRouteRequired,
			code:      apiErrors.ErrMissingRequiredData,
		},
		{
			name:      "Data inválida",
			mutate:    func(r *domain.SubmitOrderRequest) { r.Date = "15/03/2024" },
			expectErr: ErrInvalidDate,
			code:      apiErrors.ErrInvalidFormat,
		},
		{
			name: "Quantidade negativa",
			mutate: func(r *domain.SubmitOrderRequest) {
				r.Items["kg-10"] = domain.OrderItem{Cartons: -1}
			},
			expectErr: ErrNegativeQuantity,
			code:      apiErrors.ErrInvalidQuantity,
		},
		{
			name: "SKU desconhecido",
			mutate: func(r *domain.SubmitOrderRequest) {
				r.Items["zz-99"] = domain.OrderItem{Cartons: 1}
			},
			expectErr: ErrUnknownSKU,
			code:      apiErrors.ErrUnknownSKU,
		},
		{
			name: "Dúzias em SKU sem dúzia",
			mutate: func(r *domain.SubmitOrderRequest) {
				r.Items["dwb-1"] = domain.OrderItem{Dozens: 1}
			},
			expectErr: ErrDozensNotAllowed,
			code:      apiErrors.ErrInvalidQuantity,
		},
		{
			name:      "Produtivas maior que visitadas",
			mutate:    func(r *domain.SubmitOrderRequest) { r.ProductiveShops = 30 },
			expectErr: ErrInvalidShopCounts,
			code:      apiErrors.ErrInvalidShopCounts,
		},
		{
			name: "Categoria desconhecida",
			mutate: func(r *domain.SubmitOrderRequest) {
				r.CategoryProductiveShops["Soap"] = 1
			},
			expectErr: ErrUnknownCategory,
			code:      apiErrors.ErrInvalidCategory,
		},
		{
			name: "Produtivas por categoria acima do total produtivo",
			mutate: func(r *domain.SubmitOrderRequest) {
				r.CategoryProductiveShops[domain.CategoryKiteGlow] = 13
			},
			expectErr: ErrInvalidShopCounts,
			code:      apiErrors.ErrInvalidShopCounts,
		},
		{
			name:      "Order booker não cadastrado",
			mutate:    func(r *domain.SubmitOrderRequest) {},
			lookup:    true,
			ob:        nil,
			expectErr: ErrOrderBookerNotFound,
			code:      apiErrors.ErrOrderBookerNotFound,
		},
		{
			name:      "Rota de outro order booker",
			mutate:    func(r *domain.SubmitOrderRequest) { r.Route = "Route 9" },
			lookup:    true,
			ob:        registeredOB(),
			expectErr: ErrRouteNotAssigned,
			code:      apiErrors.ErrInvalidRoute,
		},
		{
			name: "Pedido sem quantidades",
			mutate: func(r *domain.SubmitOrderRequest) {
				r.Items = map[string]domain.OrderItem{"kg-10": {}}
			},
			lookup:    true,
			ob:        registeredOB(),
			expectErr: ErrEmptyOrder,
			code:      apiErrors.ErrEmptyOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			request := validRequest()
			tt.mutate(request)

			if tt.lookup {
				m.orderBookers.EXPECT().GetByContact(gomock.Any(), "P-01").Return(tt.ob, nil)
			}

			response, err := service.SubmitOrder(ctx, request)

			require.Error(t, err)
			assert.Nil(t, response)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.True(t, IsValidationError(err))

			var orderErr *OrderError
			require.ErrorAs(t, err, &orderErr)
			assert.Equal(t, tt.code, orderErr.Code)
		})
	}

	t.Run("Order booker sem rotas aceita qualquer rota", func(t *testing.T) {
		service, m := newTestService(t)
		request := validRequest()
		request.Route = "Any Route"

		ob := registeredOB()
		ob.Routes = nil

		m.orderBookers.EXPECT().GetByContact(gomock.Any(), "P-01").Return(ob, nil)
		m.orders.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				return order, nil
			})
		m.cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)

		_, err := service.SubmitOrder(ctx, request)
		require.NoError(t, err)
	})

	t.Run("Erro ao gravar não é erro de validação", func(t *testing.T) {
		service, m := newTestService(t)

		m.orderBookers.EXPECT().GetByContact(gomock.Any(), "P-01").Return(registeredOB(), nil)
		m.orders.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := service.SubmitOrder(ctx, validRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.False(t, IsValidationError(err))
	})
}

func TestService_Drafts(t *testing.T) {
	ctx := context.Background()

	t.Run("Gera id para rascunho novo", func(t *testing.T) {
		service, m := newTestService(t)

		m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, draft *domain.Draft) (*domain.Draft, error) {
				assert.Len(t, draft.ID, 6)
				return draft, nil
			})

		draft, err := service.SaveDraft(ctx, &domain.Draft{Data: &domain.Order{OBContact: "P-01"}})
		require.NoError(t, err)
		assert.NotEmpty(t, draft.ID)
	})

	t.Run("Mantém id existente", func(t *testing.T) {
		service, m := newTestService(t)

		m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, draft *domain.Draft) (*domain.Draft, error) {
				return draft, nil
			})

		draft, err := service.SaveDraft(ctx, &domain.Draft{ID: " abc123 ", Data: &domain.Order{}})
		require.NoError(t, err)
		assert.Equal(t, "abc123", draft.ID)
	})

	t.Run("Rascunho sem dados", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.SaveDraft(ctx, &domain.Draft{ID: "x"})
		assert.ErrorIs(t, err, ErrDraftRequired)
	})

	t.Run("Rascunho inexistente", func(t *testing.T) {
		service, m := newTestService(t)

		m.drafts.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, nil)

		_, err := service.GetDraft(ctx, "nope")
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})

	t.Run("Rascunho encontrado", func(t *testing.T) {
		service, m := newTestService(t)

		expected := &domain.Draft{ID: "abc123", Data: &domain.Order{OBContact: "P-01"}}
		m.drafts.EXPECT().GetByID(gomock.Any(), "abc123").Return(expected, nil)

		draft, err := service.GetDraft(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, expected, draft)
	})
}

func TestService_ResetOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Apaga e invalida o cache", func(t *testing.T) {
		service, m := newTestService(t)

		m.orders.EXPECT().DeleteAll(gomock.Any()).Return(int64(12), nil)
		m.cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)

		deleted, err := service.ResetOrders(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(12), deleted)
	})

	t.Run("Erro no banco", func(t *testing.T) {
		service, m := newTestService(t)

		m.orders.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), errors.New("boom"))

		_, err := service.ResetOrders(ctx)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_Catalog(t *testing.T) {
	service, _ := newTestService(t)

	catalog := service.Catalog()

	assert.Equal(t, domain.Categories, catalog.Categories)
	assert.Len(t, catalog.SKUs, 2)
}
