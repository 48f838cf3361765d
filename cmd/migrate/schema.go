package main

// schema cria as tabelas usadas pelos repositórios. Todas as instruções são idempotentes.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS ob_assignments (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		contact     TEXT NOT NULL UNIQUE,
		town        TEXT NOT NULL DEFAULT '',
		distributor TEXT NOT NULL DEFAULT '',
		tsm         TEXT NOT NULL DEFAULT '',
		total_shops INTEGER NOT NULL DEFAULT 0 CHECK (total_shops >= 0),
		routes      TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS submitted_orders (
		id                       BIGSERIAL PRIMARY KEY,
		reference                TEXT NOT NULL,
		order_date               TEXT NOT NULL,
		tsm                      TEXT NOT NULL DEFAULT '',
		town                     TEXT NOT NULL DEFAULT '',
		distributor              TEXT NOT NULL DEFAULT '',
		order_booker             TEXT NOT NULL DEFAULT '',
		ob_contact               TEXT NOT NULL,
		route                    TEXT NOT NULL DEFAULT '',
		total_shops              INTEGER NOT NULL DEFAULT 0,
		visited_shops            INTEGER NOT NULL DEFAULT 0,
		productive_shops         INTEGER NOT NULL DEFAULT 0,
		category_productive_data JSONB,
		order_data               JSONB NOT NULL,
		submitted_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_submitted_orders_ob_date ON submitted_orders (ob_contact, order_date)`,
	`CREATE INDEX IF NOT EXISTS idx_submitted_orders_date ON submitted_orders (order_date)`,
	`CREATE TABLE IF NOT EXISTS drafts (
		id         TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS brand_targets (
		id         BIGSERIAL PRIMARY KEY,
		ob_contact TEXT NOT NULL,
		brand_name TEXT NOT NULL,
		target_ctn DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (target_ctn >= 0),
		UNIQUE (ob_contact, brand_name)
	)`,
	`CREATE TABLE IF NOT EXISTS app_config (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ob_ranking (
		id                BIGSERIAL PRIMARY KEY,
		ob_contact        TEXT NOT NULL,
		month             TEXT NOT NULL,
		name              TEXT NOT NULL DEFAULT '',
		tsm               TEXT NOT NULL DEFAULT '',
		achievement       DOUBLE PRECISION NOT NULL DEFAULT 0,
		target            DOUBLE PRECISION NOT NULL DEFAULT 0,
		percentage        DOUBLE PRECISION NOT NULL DEFAULT 0,
		position          INTEGER NOT NULL,
		position_change   INTEGER NOT NULL DEFAULT 0,
		previous_position INTEGER NOT NULL DEFAULT 0,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (ob_contact, month)
	)`,
}
