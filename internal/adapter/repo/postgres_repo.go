package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/example/storefront/internal/domain"
)

// PostgresOrderRepo хранит принятые заказы как jsonb в таблице orders.
type PostgresOrderRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresOrderRepo(pool *pgxpool.Pool) *PostgresOrderRepo {
	return &PostgresOrderRepo{Pool: pool}
}

// Upsert сохраняет заказ; повторная доставка того же заказа перезаписывает
// payload, но не время получения.
func (r *PostgresOrderRepo) Upsert(ctx context.Context, id string, raw []byte) error {
	_, err := r.Pool.Exec(ctx, `
INSERT INTO orders(id, payload) VALUES($1, $2::jsonb)
ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload`, id, string(raw))
	return err
}

// LoadAll отдаёт заказы в порядке получения.
func (r *PostgresOrderRepo) LoadAll(ctx context.Context, fn func(id string, raw []byte) error) error {
	rows, err := r.Pool.Query(ctx, `SELECT id, payload::text FROM orders ORDER BY received_at, id`)
	if err != nil {
		return err
	}
	var (
		id  string
		raw string
	)
	_, err = pgx.ForEachRow(rows, []any{&id, &raw}, func() error {
		return fn(id, []byte(raw))
	})
	return err
}

var _ domain.OrderRepository = (*PostgresOrderRepo)(nil)

// PostgresProductRepo читает каталог из таблицы products.
type PostgresProductRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresProductRepo(pool *pgxpool.Pool) *PostgresProductRepo {
	return &PostgresProductRepo{Pool: pool}
}

const productColumns = `id, title, price::text, description, category, image`

func (r *PostgresProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *PostgresProductRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var price *string
	if err := row.Scan(&p.ID, &p.Title, &price, &p.Description, &p.Category, &p.Image); err != nil {
		return nil, err
	}
	if price != nil {
		d, err := decimal.NewFromString(*price)
		if err != nil {
			return nil, err
		}
		p.Price = decimal.NewNullDecimal(d)
	}
	return &p, nil
}

var _ domain.ProductCatalog = (*PostgresProductRepo)(nil)

// EnsureSchema — создать необходимые таблицы, если отсутствуют.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS orders (
  id text PRIMARY KEY,
  payload jsonb NOT NULL,
  received_at timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS products (
  id text PRIMARY KEY,
  position integer NOT NULL DEFAULT 0,
  title text NOT NULL,
  price numeric,
  description text NOT NULL DEFAULT '',
  category text NOT NULL DEFAULT '',
  image text NOT NULL DEFAULT ''
);`)
	return err
}
