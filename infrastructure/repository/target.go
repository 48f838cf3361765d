package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/order-booker-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-booker-api/internal/domain"
)

const (
	brandTargetsTable = "brand_targets bt"
)

type TargetRepository interface {
	ListAll(ctx context.Context) ([]*domain.BrandTarget, error)
	ListByOBContact(ctx context.Context, obContact string) ([]*domain.BrandTarget, error)
	UpsertAll(ctx context.Context, targets []*domain.BrandTarget) ([]*domain.BrandTarget, error)
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

func (r *targetRepository) ListAll(ctx context.Context) ([]*domain.BrandTarget, error) {
	return r.list(ctx, nil)
}

func (r *targetRepository) ListByOBContact(ctx context.Context, obContact string) ([]*domain.BrandTarget, error) {
	return r.list(ctx, squirrel.Eq{"bt.ob_contact": obContact})
}

func (r *targetRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.BrandTarget, error) {
	queryBuilder := squirrel.
		Select("bt.id, bt.ob_contact, bt.brand_name, bt.target_ctn").
		From(brandTargetsTable).
		OrderBy("bt.ob_contact ASC", "bt.brand_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.BrandTarget, 0)
	for rows.Next() {
		target, err := r.scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

// UpsertAll grava as metas numa única transação. Por par (order booker, categoria) a última gravação prevalece.
func (r *targetRepository) UpsertAll(ctx context.Context, targets []*domain.BrandTarget) ([]*domain.BrandTarget, error) {
	saved := make([]*domain.BrandTarget, 0, len(targets))

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, target := range targets {
			result, err := r.upsert(ctx, tx, target)
			if err != nil {
				return fmt.Errorf("erro ao salvar meta de %s: %w", target.Category, err)
			}
			saved = append(saved, result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (r *targetRepository) upsert(ctx context.Context, q postgres.Queryer, target *domain.BrandTarget) (*domain.BrandTarget, error) {
	query, args, err := squirrel.
		Insert("brand_targets").
		Columns("ob_contact", "brand_name", "target_ctn").
		Values(target.OBContact, string(target.Category), target.TargetCartons).
		Suffix(`
			ON CONFLICT (ob_contact, brand_name) DO UPDATE SET
				target_ctn = EXCLUDED.target_ctn
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&target.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao salvar meta: %w", err)
	}

	return target, nil
}

func (r *targetRepository) scanTarget(rows *sql.Rows) (*domain.BrandTarget, error) {
	target := &domain.BrandTarget{}
	var category string

	if err := rows.Scan(&target.ID, &target.OBContact, &category, &target.TargetCartons); err != nil {
		return nil, err
	}
	target.Category = domain.Category(category)

	return target, nil
}
