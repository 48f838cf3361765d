package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/order-booker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var rankingCatalog = domain.Catalog{
	{ID: "kg-1", Category: domain.CategoryKiteGlow, UnitsPerCarton: 10, UnitsPerDozen: 12},
}

func cartons(contact, date string, quantity int) *domain.Order {
	return &domain.Order{
		OBContact: contact,
		Date:      date,
		Items:     map[string]domain.OrderItem{"kg-1": {Cartons: quantity}},
	}
}

func TestOBRankingService_processOBRankingWithDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	orderBookerRepo := mocks.NewMockOrderBookerRepository(ctrl)
	targetRepo := mocks.NewMockTargetRepository(ctrl)
	rankingRepo := mocks.NewMockOBRankingRepository(ctrl)

	service := &OBRankingService{
		orderRepo:       orderRepo,
		orderBookerRepo: orderBookerRepo,
		targetRepo:      targetRepo,
		rankingRepo:     rankingRepo,
		catalog:         rankingCatalog,
		location:        time.UTC,
	}

	orderBookers := []*domain.OrderBooker{
		{Contact: "P-01", Name: "Ali", TSM: "Hassan"},
		{Contact: "P-02", Name: "Bilal", TSM: "Hassan"},
		{Contact: "P-03", Name: "Kamran", TSM: "Usman"},
	}

	tests := []struct {
		name          string
		executionDate time.Time
		setup         func()
		expectErr     bool
		validate      func(t *testing.T, result []*domain.OBRankingItem)
	}{
		{
			name:          "Meio do mês sem ranking anterior - posições pela realização",
			executionDate: time.Date(2024, 1, 16, 6, 0, 0, 0, time.UTC),
			setup: func() {
				orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filters *domain.OrderFilters) ([]*domain.Order, error) {
						assert.Equal(t, "2024-01-01", filters.StartDate.Format(time.DateOnly))
						assert.Equal(t, "2024-01-15", filters.EndDate.Format(time.DateOnly))
						return []*domain.Order{
							cartons("P-01", "2024-01-10", 3),
							cartons("P-02", "2024-01-11", 8),
							cartons("P-02", "2024-01-15", 2),
						}, nil
					})
				orderBookerRepo.EXPECT().List(gomock.Any()).Return(orderBookers, nil)
				targetRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.BrandTarget{
					{OBContact: "P-02", Category: domain.CategoryKiteGlow, TargetCartons: 40},
				}, nil)
				rankingRepo.EXPECT().GetByOBContact(gomock.Any(), gomock.Any(), "01-2024").Return(nil, nil).Times(3)
				rankingRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.OBRankingItem) {
				require.Len(t, result, 3)

				assert.Equal(t, "P-02", result[0].OBContact)
				assert.Equal(t, 1, result[0].Position)
				assert.InDelta(t, 10.0, result[0].Achievement, 1e-9)
				assert.InDelta(t, 25.0, result[0].Percentage, 1e-9)
				assert.Equal(t, "01-2024", result[0].Month)

				assert.Equal(t, "P-01", result[1].OBContact)
				assert.Equal(t, 2, result[1].Position)

				// sem pedidos, entra no fim do ranking
				assert.Equal(t, "P-03", result[2].OBContact)
				assert.Equal(t, 3, result[2].Position)
				assert.Equal(t, 0.0, result[2].Achievement)

				for _, item := range result {
					assert.Equal(t, 0, item.PositionChange)
					assert.Equal(t, 0, item.PreviousPosition)
				}
			},
		},
		{
			name:          "Ranking anterior existente - calcula mudança de posição",
			executionDate: time.Date(2024, 1, 20, 6, 0, 0, 0, time.UTC),
			setup: func() {
				orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Order{
					cartons("P-03", "2024-01-18", 20),
					cartons("P-01", "2024-01-05", 5),
					cartons("P-02", "2024-01-06", 1),
				}, nil)
				orderBookerRepo.EXPECT().List(gomock.Any()).Return(orderBookers, nil)
				targetRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

				rankingRepo.EXPECT().GetByOBContact(gomock.Any(), "P-01", "01-2024").
					Return(&domain.OBRankingItem{OBContact: "P-01", Position: 1}, nil)
				rankingRepo.EXPECT().GetByOBContact(gomock.Any(), "P-02", "01-2024").
					Return(&domain.OBRankingItem{OBContact: "P-02", Position: 2}, nil)
				rankingRepo.EXPECT().GetByOBContact(gomock.Any(), "P-03", "01-2024").
					Return(&domain.OBRankingItem{OBContact: "P-03", Position: 3}, nil)

				rankingRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.OBRankingItem) {
				require.Len(t, result, 3)

				assert.Equal(t, "P-03", result[0].OBContact)
				assert.Equal(t, 2, result[0].PositionChange)
				assert.Equal(t, 3, result[0].PreviousPosition)

				assert.Equal(t, "P-01", result[1].OBContact)
				assert.Equal(t, -1, result[1].PositionChange)

				assert.Equal(t, "P-02", result[2].OBContact)
				assert.Equal(t, -1, result[2].PositionChange)
			},
		},
		{
			name:          "Primeiro dia do mês processa o mês anterior",
			executionDate: time.Date(2024, 2, 1, 6, 0, 0, 0, time.UTC),
			setup: func() {
				orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filters *domain.OrderFilters) ([]*domain.Order, error) {
						assert.Equal(t, "2024-01-01", filters.StartDate.Format(time.DateOnly))
						assert.Equal(t, "2024-01-31", filters.EndDate.Format(time.DateOnly))
						return nil, nil
					})
				orderBookerRepo.EXPECT().List(gomock.Any()).Return(orderBookers[:1], nil)
				targetRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
				rankingRepo.EXPECT().GetByOBContact(gomock.Any(), "P-01", "01-2024").Return(nil, errors.New("timeout"))
				rankingRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.OBRankingItem) {
				require.Len(t, result, 1)
				assert.Equal(t, "01-2024", result[0].Month)
				assert.Equal(t, 1, result[0].Position)
			},
		},
		{
			name:          "Erro ao carregar pedidos interrompe o processamento",
			executionDate: time.Date(2024, 1, 16, 6, 0, 0, 0, time.UTC),
			setup: func() {
				orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
				orderBookerRepo.EXPECT().List(gomock.Any()).Return(orderBookers, nil).AnyTimes()
				targetRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil).AnyTimes()
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.processOBRankingWithDate(context.Background(), tt.executionDate)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestOBRankingService_updatePositions(t *testing.T) {
	service := &OBRankingService{}

	items := []*domain.OBRankingItem{
		{OBContact: "B", Achievement: 5},
		{OBContact: "A", Achievement: 5},
		{OBContact: "C", Achievement: 9},
	}

	service.updatePositions(items, map[string]*domain.OBRankingItem{
		"A": {OBContact: "A", Position: 1},
	})

	assert.Equal(t, "C", items[0].OBContact)
	// empate desfeito pelo contato
	assert.Equal(t, "A", items[1].OBContact)
	assert.Equal(t, "B", items[2].OBContact)

	assert.Equal(t, -1, items[1].PositionChange)
	assert.Equal(t, 1, items[1].PreviousPosition)
	assert.Equal(t, 0, items[2].PreviousPosition)
}

func TestOBRankingService_UpdateOBRanking_SkipsWhenRunning(t *testing.T) {
	service := &OBRankingService{syncRunning: true}

	assert.NoError(t, service.UpdateOBRanking(context.Background()))
	assert.True(t, service.GetStatus()["sync_running"].(bool))
}
