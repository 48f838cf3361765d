package ranking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/infrastructure/repository"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
)

// MonthLayout é o formato mm-yyyy usado para identificar o mês do ranking
const MonthLayout = "01-2006"

var (
	ErrInvalidMonth      = errors.New("invalid ranking month")
	ErrDatabaseOperation = errors.New("database operation error")
)

// RankingError carrega o código de API do erro de ranking
type RankingError struct {
	Err     error
	Code    string
	Details string
}

func (e *RankingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RankingError) Unwrap() error {
	return e.Err
}

type RankingService interface {
	GetOBRanking(ctx context.Context, month string) (*domain.OBRankingResponse, error)
}

type OBRankingService struct {
	rankingRepository repository.OBRankingRepository
	location          *time.Location
	now               func() time.Time
}

func NewOBRankingService(rankingRepository repository.OBRankingRepository, cfg *config.Config) RankingService {
	return &OBRankingService{
		rankingRepository: rankingRepository,
		location:          cfg.App.Location(),
		now:               time.Now,
	}
}

// GetOBRanking devolve o ranking gravado do mês. Sem mês, usa o mês de ontem,
// que é o último processado pelo job diário.
func (s *OBRankingService) GetOBRanking(ctx context.Context, month string) (*domain.OBRankingResponse, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		month = s.now().In(s.location).AddDate(0, 0, -1).Format(MonthLayout)
	}

	if _, err := time.Parse(MonthLayout, month); err != nil {
		return nil, &RankingError{Err: ErrInvalidMonth, Code: apiErrors.ErrInvalidFilters, Details: "Mês deve seguir o formato mm-yyyy"}
	}

	ranking, err := s.rankingRepository.GetRanking(ctx, month)
	if err != nil {
		logrus.WithError(err).WithField("month", month).Error("Erro ao buscar ranking de order bookers")
		return nil, &RankingError{Err: ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, Details: "Falha ao buscar ranking"}
	}

	return ranking, nil
}
