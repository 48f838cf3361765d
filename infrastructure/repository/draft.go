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

type DraftRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Draft, error)
	Save(ctx context.Context, draft *domain.Draft) (*domain.Draft, error)
	Delete(ctx context.Context, id string) error
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type draftRepository struct {
	conn *postgres.Connection
}

func NewDraftRepository(conn *postgres.Connection) DraftRepository {
	return &draftRepository{
		conn: conn,
	}
}

func (r *draftRepository) GetByID(ctx context.Context, id string) (*domain.Draft, error) {
	query, args, err := squirrel.
		Select("d.id, d.data, d.updated_at").
		From("drafts d").
		Where(squirrel.Eq{"d.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	draft := &domain.Draft{}
	var dataJSON []byte

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&draft.ID, &dataJSON, &draft.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear rascunho: %w", err)
	}

	if dataJSON != nil {
		data := &domain.Order{}
		if err := json.Unmarshal(dataJSON, data); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do rascunho: %w", err)
		}
		draft.Data = data
	}

	return draft, nil
}

// Save faz upsert do rascunho, a última gravação prevalece
func (r *draftRepository) Save(ctx context.Context, draft *domain.Draft) (*domain.Draft, error) {
	dataJSON, err := json.Marshal(draft.Data)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar rascunho para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("drafts").
		Columns("id", "data").
		Values(draft.ID, dataJSON).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				data = EXCLUDED.data,
				updated_at = NOW()
			RETURNING updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&draft.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao salvar rascunho: %w", err)
	}

	return draft, nil
}

func (r *draftRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("drafts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao apagar rascunho: %w", err)
	}

	return nil
}

func (r *draftRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("drafts").
		Where(squirrel.Lt{"updated_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
