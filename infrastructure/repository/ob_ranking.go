package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/order-booker-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-booker-api/internal/domain"
)

const (
	obRankingTable = "ob_ranking r"
)

var obRankingColumns = []string{
	"r.id",
	"r.ob_contact",
	"r.month",
	"r.name",
	"r.tsm",
	"r.achievement",
	"r.target",
	"r.percentage",
	"r.position",
	"r.position_change",
	"r.previous_position",
	"r.created_at",
	"r.updated_at",
}

type OBRankingRepository interface {
	GetByOBContact(ctx context.Context, obContact string, month string) (*domain.OBRankingItem, error)
	GetRanking(ctx context.Context, month string) (*domain.OBRankingResponse, error)
	SaveOrUpdate(ctx context.Context, rankings []*domain.OBRankingItem) error
}

type obRankingRepository struct {
	conn *postgres.Connection
}

func NewOBRankingRepository(conn *postgres.Connection) OBRankingRepository {
	return &obRankingRepository{
		conn: conn,
	}
}

func (r *obRankingRepository) GetRanking(ctx context.Context, month string) (*domain.OBRankingResponse, error) {
	query, args, err := squirrel.
		Select(obRankingColumns...).
		From(obRankingTable).
		Where(squirrel.Eq{"r.month": month}).
		OrderBy("r.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.OBRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item := &domain.OBRankingItem{}
		if err := rows.Scan(r.scanDest(item)...); err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.OBRankingResponse{
		Month:      month,
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *obRankingRepository) GetByOBContact(ctx context.Context, obContact string, month string) (*domain.OBRankingItem, error) {
	query, args, err := squirrel.
		Select(obRankingColumns...).
		From(obRankingTable).
		Where(squirrel.Eq{"r.ob_contact": obContact, "r.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item := &domain.OBRankingItem{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(r.scanDest(item)...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}

	return item, nil
}

func (r *obRankingRepository) SaveOrUpdate(ctx context.Context, rankings []*domain.OBRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("ob_ranking").
		Columns(
			"ob_contact",
			"month",
			"name",
			"tsm",
			"achievement",
			"target",
			"percentage",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.OBContact,
			ranking.Month,
			ranking.Name,
			ranking.TSM,
			ranking.Achievement,
			ranking.Target,
			ranking.Percentage,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (ob_contact, month) DO UPDATE SET
			name = EXCLUDED.name,
			tsm = EXCLUDED.tsm,
			achievement = EXCLUDED.achievement,
			target = EXCLUDED.target,
			percentage = EXCLUDED.percentage,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *obRankingRepository) scanDest(item *domain.OBRankingItem) []interface{} {
	return []interface{}{
		&item.ID,
		&item.OBContact,
		&item.Month,
		&item.Name,
		&item.TSM,
		&item.Achievement,
		&item.Target,
		&item.Percentage,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	}
}
