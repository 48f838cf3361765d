package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/order-booker-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-booker-api/internal/domain"
)

type SettingRepository interface {
	List(ctx context.Context) ([]*domain.AppSetting, error)
	Get(ctx context.Context, key string) (*domain.AppSetting, error)
	Upsert(ctx context.Context, setting *domain.AppSetting) error
}

type settingRepository struct {
	conn *postgres.Connection
}

func NewSettingRepository(conn *postgres.Connection) SettingRepository {
	return &settingRepository{
		conn: conn,
	}
}

func (r *settingRepository) List(ctx context.Context) ([]*domain.AppSetting, error) {
	query, args, err := squirrel.
		Select("key", "value").
		From("app_config").
		OrderBy("key ASC").
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

	settings := make([]*domain.AppSetting, 0)
	for rows.Next() {
		setting := &domain.AppSetting{}
		if err := rows.Scan(&setting.Key, &setting.Value); err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração: %w", err)
		}
		settings = append(settings, setting)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return settings, nil
}

func (r *settingRepository) Get(ctx context.Context, key string) (*domain.AppSetting, error) {
	query, args, err := squirrel.
		Select("key", "value").
		From("app_config").
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	setting := &domain.AppSetting{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&setting.Key, &setting.Value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração: %w", err)
	}

	return setting, nil
}

func (r *settingRepository) Upsert(ctx context.Context, setting *domain.AppSetting) error {
	query, args, err := squirrel.
		Insert("app_config").
		Columns("key", "value").
		Values(setting.Key, setting.Value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar configuração: %w", err)
	}

	return nil
}
