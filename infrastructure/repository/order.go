// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/order-booker-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-booker-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	ordersTable = "submitted_orders so"
)

var orderColumns = []string{
	"so.id",
	"so.reference",
	"so.order_date",
	"so.tsm",
	"so.town",
	"so.distributor",
	"so.order_booker",
	"so.ob_contact",
	"so.route",
	"so.total_shops",
	"so.visited_shops",
	"so.productive_shops",
	"so.category_productive_data",
	"so.order_data",
	"so.submitted_at",
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (*domain.Order, error)
	List(ctx context.Context, filters *domain.OrderFilters) ([]*domain.Order, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// Insert grava o pedido e devolve o id e o horário atribuídos pelo banco
func (r *orderRepository) Insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	categoryShopsJSON, err := json.Marshal(order.CategoryProductiveShops)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar category_productive_data para JSON: %w", err)
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar order_data para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("submitted_orders").
		Columns(
			"reference",
			"order_date",
			"tsm",
			"town",
			"distributor",
			"order_booker",
			"ob_contact",
			"route",
			"total_shops",
			"visited_shops",
			"productive_shops",
			"category_productive_data",
			"order_data",
		).
		Values(
			order.Reference,
			order.Date,
			order.TSM,
			order.Town,
			order.Distributor,
			order.OrderBooker,
			order.OBContact,
			order.Route,
			order.TotalShops,
			order.VisitedShops,
			order.ProductiveShops,
			categoryShopsJSON,
			itemsJSON,
		).
		Suffix("RETURNING id, submitted_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&order.ID, &order.SubmittedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir pedido: %w", err)
	}

	return order, nil
}

// List devolve os pedidos do mais recente para o mais antigo. Datas filtram pela coluna textual YYYY-MM-DD.
func (r *orderRepository) List(ctx context.Context, filters *domain.OrderFilters) ([]*domain.Order, error) {
	queryBuilder := squirrel.
		Select(orderColumns...).
		From(ordersTable).
		OrderBy("so.submitted_at DESC", "so.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.OBContact != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"so.ob_contact": filters.OBContact})
		}

		if filters.TSM != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"so.tsm": filters.TSM})
		}

		if filters.StartDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"so.order_date": filters.StartDate.Format(time.DateOnly)})
		}

		if filters.EndDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"so.order_date": filters.EndDate.Format(time.DateOnly)})
		}
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

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

// DeleteAll apaga todos os pedidos e rascunhos numa única transação
func (r *orderRepository) DeleteAll(ctx context.Context) (int64, error) {
	var deleted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM submitted_orders")
		if err != nil {
			return fmt.Errorf("erro ao apagar pedidos: %w", err)
		}

		deleted, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM drafts"); err != nil {
			return fmt.Errorf("erro ao apagar rascunhos: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

func (r *orderRepository) scanOrder(rows *sql.Rows) (*domain.Order, error) {
	order := &domain.Order{}
	var categoryShopsJSON, itemsJSON []byte

	err := rows.Scan(
		&order.ID,
		&order.Reference,
		&order.Date,
		&order.TSM,
		&order.Town,
		&order.Distributor,
		&order.OrderBooker,
		&order.OBContact,
		&order.Route,
		&order.TotalShops,
		&order.VisitedShops,
		&order.ProductiveShops,
		&categoryShopsJSON,
		&itemsJSON,
		&order.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}

	if categoryShopsJSON != nil {
		categoryShops := make(map[domain.Category]int)
		if err := json.Unmarshal(categoryShopsJSON, &categoryShops); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de category_productive_data: %w", err)
		}
		order.CategoryProductiveShops = categoryShops
	}

	if itemsJSON != nil {
		items := make(map[string]domain.OrderItem)
		if err := json.Unmarshal(itemsJSON, &items); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de order_data: %w", err)
		}
		order.Items = items
	}

	return order, nil
}
