package assigning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/order-booker-api/infrastructure/cache/mocks"
	"github.com/vfg2006/order-booker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_SaveOrderBooker(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		request   *domain.SaveOrderBookerRequest
		setup     func(repo *mocks.MockOrderBookerRepository, cache *cachemocks.MockReportCache)
		expectErr error
		code      string
		validate  func(t *testing.T, saved *domain.OrderBooker)
	}{
		{
			name: "Novo order booker com rotas normalizadas",
			request: &domain.SaveOrderBookerRequest{
				Name:       " Ali ",
				Contact:    "P-01",
				TSM:        "Hassan",
				TotalShops: 40,
				Routes:     []string{"Route 1", " ", "Route 2", "Route 1"},
			},
			setup: func(repo *mocks.MockOrderBookerRepository, cache *cachemocks.MockReportCache) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ob *domain.OrderBooker) (*domain.OrderBooker, error) {
						ob.ID = 10
						return ob, nil
					})
				cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, saved *domain.OrderBooker) {
				assert.Equal(t, int64(10), saved.ID)
				assert.Equal(t, "Ali", saved.Name)
				assert.Equal(t, []string{"Route 1", "Route 2"}, saved.Routes)
			},
		},
		{
			name:    "Sem rotas grava lista vazia",
			request: &domain.SaveOrderBookerRequest{Name: "Ali", Contact: "P-01"},
			setup: func(repo *mocks.MockOrderBookerRepository, cache *cachemocks.MockReportCache) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ob *domain.OrderBooker) (*domain.OrderBooker, error) {
						return ob, nil
					})
				cache.EXPECT().InvalidateAll(gomock.Any()).Return(errors.New("redis down"))
			},
			validate: func(t *testing.T, saved *domain.OrderBooker) {
				assert.NotNil(t, saved.Routes)
				assert.Empty(t, saved.Routes)
			},
		},
		{
			name:      "Contato ausente",
			request:   &domain.SaveOrderBookerRequest{Name: "Ali"},
			setup:     func(repo *mocks.MockOrderBookerRepository, cache *cachemocks.MockReportCache) {},
			expectErr: ErrContactRequired,
			code:      apiErrors.ErrMissingRequiredData,
		},
		{
			name:      "Nome ausente",
			request:   &domain.SaveOrderBookerRequest{Contact: "P-01"},
			setup:     func(repo *mocks.MockOrderBookerRepository, cache *cachemocks.MockReportCache) {},
			expectErr: ErrNameRequired,
			code:      apiErrors.ErrMissingRequiredData,
		},
		{
			name:      "Total de lojas negativo",
			request:   &domain.SaveOrderBookerRequest{Name: "Ali", Contact: "P-01", TotalShops: -1},
			setup:     func(repo *mocks.MockOrderBookerRepository, cache *cachemocks.MockReportCache) {},
			expectErr: ErrNegativeTotalShops,
			code:      apiErrors.ErrInvalidShopCounts,
		},
		{
			name:    "Atualização de id inexistente",
			request: &domain.SaveOrderBookerRequest{ID: 99, Name: "Ali", Contact: "P-01"},
			setup: func(repo *mocks.MockOrderBookerRepository, cache *cachemocks.MockReportCache) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectErr: ErrOrderBookerNotFound,
			code:      apiErrors.ErrOrderBookerNotFound,
		},
		{
			name:    "Erro no banco",
			request: &domain.SaveOrderBookerRequest{Name: "Ali", Contact: "P-01"},
			setup: func(repo *mocks.MockOrderBookerRepository, cache *cachemocks.MockReportCache) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("duplicate key"))
			},
			expectErr: ErrDatabaseOperation,
			code:      apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockOrderBookerRepository(ctrl)
			reportCache := cachemocks.NewMockReportCache(ctrl)
			tt.setup(repo, reportCache)

			service := &Service{orderBookerRepository: repo, reportCache: reportCache}

			saved, err := service.SaveOrderBooker(ctx, tt.request)

			if tt.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErr)

				var assignmentErr *AssignmentError
				require.ErrorAs(t, err, &assignmentErr)
				assert.Equal(t, tt.code, assignmentErr.Code)
				return
			}

			require.NoError(t, err)
			tt.validate(t, saved)
		})
	}
}

func TestService_GetAndDeleteOrderBooker(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOrderBookerRepository(ctrl)
	reportCache := cachemocks.NewMockReportCache(ctrl)
	service := &Service{orderBookerRepository: repo, reportCache: reportCache}

	repo.EXPECT().GetByContact(gomock.Any(), "P-01").Return(&domain.OrderBooker{Contact: "P-01"}, nil)
	ob, err := service.GetOrderBooker(ctx, " P-01 ")
	require.NoError(t, err)
	assert.Equal(t, "P-01", ob.Contact)

	repo.EXPECT().GetByContact(gomock.Any(), "X-99").Return(nil, nil)
	_, err = service.GetOrderBooker(ctx, "X-99")
	assert.ErrorIs(t, err, ErrOrderBookerNotFound)

	repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(true, nil)
	reportCache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)
	assert.NoError(t, service.DeleteOrderBooker(ctx, 3))

	repo.EXPECT().Delete(gomock.Any(), int64(4)).Return(false, nil)
	assert.ErrorIs(t, service.DeleteOrderBooker(ctx, 4), ErrOrderBookerNotFound)
}

func TestService_Reseed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOrderBookerRepository(ctrl)
	reportCache := cachemocks.NewMockReportCache(ctrl)
	service := &Service{orderBookerRepository: repo, reportCache: reportCache}

	repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, obs []*domain.OrderBooker) error {
			contacts := make(map[string]bool, len(obs))
			for _, ob := range obs {
				assert.False(t, contacts[ob.Contact], "contato repetido: %s", ob.Contact)
				contacts[ob.Contact] = true
				assert.NotEmpty(t, ob.Routes)
			}
			return nil
		})
	reportCache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)

	quantity, err := service.Reseed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(domain.DefaultOrderBookers()), quantity)

	repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("tx aborted"))
	_, err = service.Reseed(ctx)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
