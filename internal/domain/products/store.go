package products

import (
	"context"
	"errors"
	"fmt"

	"eightbitbar/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("product not found")

type Store interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, category string, activeOnly bool, limit, offset int) ([]Product, int, error)
	Update(ctx context.Context, p *Product) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

func (r *Repository) Create(ctx context.Context, p *Product) error {
	const query = `
        INSERT INTO products (name, category, description, price_cents, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `
	return r.db.QueryRow(ctx, query,
		p.Name, p.Category, p.Description, p.PriceCents, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	const query = `
        SELECT id, name, category, description, price_cents, is_active, created_at, updated_at
        FROM products
        WHERE id = $1
    `
	var p Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Description, &p.PriceCents, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context, category string, activeOnly bool, limit, offset int) ([]Product, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	if offset < 0 {
		offset = 0
	}

	where := "1=1"
	args := []any{}
	arg := 1

	if category != "" {
		where += fmt.Sprintf(" AND category = $%d", arg)
		args = append(args, category)
		arg++
	}
	if activeOnly {
		where += " AND is_active = true"
	}

	q := fmt.Sprintf(`
        SELECT id, name, category, description, price_cents, is_active, created_at, updated_at,
               COUNT(*) OVER() AS total
        FROM products
        WHERE %s
        ORDER BY category, name
        LIMIT $%d OFFSET $%d
    `, where, arg, arg+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []Product
	total := 0
	for rows.Next() {
		var p Product
		var t int
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Description, &p.PriceCents, &p.IsActive, &p.CreatedAt, &p.UpdatedAt, &t,
		); err != nil {
			return nil, 0, err
		}
		if total == 0 {
			total = t
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *Repository) Update(ctx context.Context, p *Product) error {
	const query = `
        UPDATE products
        SET name = $2, category = $3, description = $4, price_cents = $5, updated_at = now()
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Category, p.Description, p.PriceCents)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
