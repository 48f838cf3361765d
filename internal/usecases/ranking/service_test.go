package ranking

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

func TestOBRankingService_GetOBRanking(t *testing.T) {
	// 1º de março: ontem ainda é fevereiro
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	tests := []struct {
		name      string
		month     string
		setup     func(repo *mocks.MockOBRankingRepository)
		expectErr error
		validate  func(t *testing.T, result *domain.OBRankingResponse)
	}{
		{
			name:  "Sem mês usa o mês de ontem",
			month: "",
			setup: func(repo *mocks.MockOBRankingRepository) {
				repo.EXPECT().GetRanking(gomock.Any(), "02-2024").
					Return(&domain.OBRankingResponse{Month: "02-2024"}, nil)
			},
			validate: func(t *testing.T, result *domain.OBRankingResponse) {
				assert.Equal(t, "02-2024", result.Month)
			},
		},
		{
			name:  "Mês explícito",
			month: " 12-2023 ",
			setup: func(repo *mocks.MockOBRankingRepository) {
				repo.EXPECT().GetRanking(gomock.Any(), "12-2023").
					Return(&domain.OBRankingResponse{
						Month:   "12-2023",
						Ranking: []domain.OBRankingItem{{OBContact: "P-01", Position: 1}},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.OBRankingResponse) {
				require.Len(t, result.Ranking, 1)
				assert.Equal(t, "P-01", result.Ranking[0].OBContact)
			},
		},
		{
			name:      "Formato inválido",
			month:     "2024-02",
			setup:     func(repo *mocks.MockOBRankingRepository) {},
			expectErr: ErrInvalidMonth,
		},
		{
			name:  "Erro no repositório",
			month: "01-2024",
			setup: func(repo *mocks.MockOBRankingRepository) {
				repo.EXPECT().GetRanking(gomock.Any(), "01-2024").Return(nil, errors.New("boom"))
			},
			expectErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockOBRankingRepository(ctrl)
			tt.setup(repo)

			service := &OBRankingService{
				rankingRepository: repo,
				location:          time.UTC,
				now:               func() time.Time { return now },
			}

			result, err := service.GetOBRanking(ctx, tt.month)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}
