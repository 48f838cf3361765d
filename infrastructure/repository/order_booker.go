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
	orderBookersTable = "ob_assignments ob"
)

var orderBookerColumns = []string{
	"ob.id",
	"ob.name",
	"ob.contact",
	"ob.town",
	"ob.distributor",
	"ob.tsm",
	"ob.total_shops",
	"ob.routes",
}

type OrderBookerRepository interface {
	List(ctx context.Context) ([]*domain.OrderBooker, error)
	GetByID(ctx context.Context, id int64) (*domain.OrderBooker, error)
	GetByContact(ctx context.Context, contact string) (*domain.OrderBooker, error)
	Save(ctx context.Context, ob *domain.OrderBooker) (*domain.OrderBooker, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ReplaceAll(ctx context.Context, obs []*domain.OrderBooker) error
}

type orderBookerRepository struct {
	conn *postgres.Connection
}

func NewOrderBookerRepository(conn *postgres.Connection) OrderBookerRepository {
	return &orderBookerRepository{
		conn: conn,
	}
}

func (r *orderBookerRepository) List(ctx context.Context) ([]*domain.OrderBooker, error) {
	query, args, err := squirrel.
		Select(orderBookerColumns...).
		From(orderBookersTable).
		OrderBy("ob.tsm ASC", "ob.name ASC").
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

	obs := make([]*domain.OrderBooker, 0)
	for rows.Next() {
		ob := &domain.OrderBooker{}
		if err := rows.Scan(r.scanDest(ob)...); err != nil {
			return nil, fmt.Errorf("erro ao escanear order booker: %w", err)
		}
		obs = append(obs, ob)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return obs, nil
}

func (r *orderBookerRepository) GetByID(ctx context.Context, id int64) (*domain.OrderBooker, error) {
	return r.getOne(ctx, squirrel.Eq{"ob.id": id})
}

func (r *orderBookerRepository) GetByContact(ctx context.Context, contact string) (*domain.OrderBooker, error) {
	return r.getOne(ctx, squirrel.Eq{"ob.contact": contact})
}

func (r *orderBookerRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.OrderBooker, error) {
	query, args, err := squirrel.
		Select(orderBookerColumns...).
		From(orderBookersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ob := &domain.OrderBooker{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(r.scanDest(ob)...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear order booker: %w", err)
	}

	return ob, nil
}

// Save atualiza pelo id quando informado; caso contrário faz upsert pelo contato
func (r *orderBookerRepository) Save(ctx context.Context, ob *domain.OrderBooker) (*domain.OrderBooker, error) {
	var (
		query string
		args  []interface{}
		err   error
	)

	if ob.ID > 0 {
		query, args, err = squirrel.
			Update("ob_assignments").
			Set("name", ob.Name).
			Set("contact", ob.Contact).
			Set("town", ob.Town).
			Set("distributor", ob.Distributor).
			Set("tsm", ob.TSM).
			Set("total_shops", ob.TotalShops).
			Set("routes", pq.Array(ob.Routes)).
			Where(squirrel.Eq{"id": ob.ID}).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
	} else {
		query, args, err = insertOrderBooker(squirrel.StatementBuilder, []*domain.OrderBooker{ob}).
			Suffix(`
				ON CONFLICT (contact) DO UPDATE SET
					name = EXCLUDED.name,
					town = EXCLUDED.town,
					distributor = EXCLUDED.distributor,
					tsm = EXCLUDED.tsm,
					total_shops = EXCLUDED.total_shops,
					routes = EXCLUDED.routes
				RETURNING id
			`).
			ToSql()
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&ob.ID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao salvar order booker: %w", err)
	}

	return ob, nil
}

func (r *orderBookerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := squirrel.
		Delete("ob_assignments").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao apagar order booker: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

// ReplaceAll troca todo o diretório numa única transação
func (r *orderBookerRepository) ReplaceAll(ctx context.Context, obs []*domain.OrderBooker) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM ob_assignments"); err != nil {
			return fmt.Errorf("erro ao limpar order bookers: %w", err)
		}

		if len(obs) == 0 {
			return nil
		}

		query, args, err := insertOrderBooker(squirrel.StatementBuilder, obs).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		return nil
	})
}

func insertOrderBooker(builder squirrel.StatementBuilderType, obs []*domain.OrderBooker) squirrel.InsertBuilder {
	query := builder.
		Insert("ob_assignments").
		Columns("name", "contact", "town", "distributor", "tsm", "total_shops", "routes").
		PlaceholderFormat(squirrel.Dollar)

	for _, ob := range obs {
		query = query.Values(ob.Name, ob.Contact, ob.Town, ob.Distributor, ob.TSM, ob.TotalShops, pq.Array(ob.Routes))
	}

	return query
}

func (r *orderBookerRepository) scanDest(ob *domain.OrderBooker) []interface{} {
	return []interface{}{
		&ob.ID,
		&ob.Name,
		&ob.Contact,
		&ob.Town,
		&ob.Distributor,
		&ob.TSM,
		&ob.TotalShops,
		pq.Array(&ob.Routes),
	}
}
