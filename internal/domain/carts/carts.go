package carts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eightbitbar/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

var ErrItemNotFound = errors.New("cart item not found")

type Repository struct {
	db  dbx.Querier
	ttl time.Duration
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q, ttl: 24 * time.Hour}
}

func NewRepositoryWithTTL(q dbx.Querier, ttl time.Duration) *Repository {
	return &Repository{db: q, ttl: ttl}
}

func (r *Repository) bumpTTL(ctx context.Context, cartID int64) {
	_, _ = r.db.Exec(ctx, `
UPDATE carts
SET expires_at = $2,
    updated_at = now()
WHERE id = $1
  AND status = 'active'
`, cartID, time.Now().Add(r.ttl))
}

// EnsureActive returns the user's current active cart id, creating one with a
// fresh TTL when none exists. A cart in checkout_pending stays untouched; the
// payment flow owns it until the webhook converts or unlocks it.
func (r *Repository) EnsureActive(ctx context.Context, userID int64) (int64, error) {
	var id int64

	err := r.db.QueryRow(ctx, `
SELECT id
FROM carts
WHERE user_id = $1
  AND status = 'active'
  AND (expires_at IS NULL OR expires_at > now())
LIMIT 1
`, userID).Scan(&id)

	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("get active cart: %w", err)
	}

	if err := r.db.QueryRow(ctx, `
INSERT INTO carts (user_id, status, expires_at)
VALUES ($1, 'active', $2)
RETURNING id
`, userID, time.Now().Add(r.ttl)).Scan(&id); err != nil {
		return 0, fmt.Errorf("ensure active cart: %w", err)
	}

	return id, nil
}

// AddItem upserts a product line on the user's active cart, snapshotting the
// product's current price. A product that is missing or inactive affects no
// rows and is reported as an error.
func (r *Repository) AddItem(ctx context.Context, userID, productID int64, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("qty must be > 0")
	}

	cartID, err := r.EnsureActive(ctx, userID)
	if err != nil {
		return err
	}

	const q = `
WITH p AS (
  SELECT price_cents
  FROM products
  WHERE id = $1 AND is_active = true
)
INSERT INTO cart_items (cart_id, product_id, quantity, price_cents)
SELECT $2, $1, $3, p.price_cents
FROM p
ON CONFLICT (cart_id, product_id)
DO UPDATE SET
  quantity    = cart_items.quantity + EXCLUDED.quantity,
  price_cents = EXCLUDED.price_cents,
  updated_at  = now();
`

	tag, err := r.db.Exec(ctx, q, productID, cartID, qty)
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product not found or inactive")
	}

	r.bumpTTL(ctx, cartID)
	return nil
}

func (r *Repository) UpdateItemQty(ctx context.Context, userID, itemID int64, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("qty must be > 0")
	}

	var cartID int64

	err := r.db.QueryRow(ctx, `
UPDATE cart_items ci
SET quantity = $3,
    updated_at = now()
WHERE ci.id = $2
  AND ci.cart_id = (
    SELECT id
    FROM carts
    WHERE user_id = $1
      AND status = 'active'
      AND (expires_at IS NULL OR expires_at > now())
    LIMIT 1
  )
RETURNING ci.cart_id
`, userID, itemID, qty).Scan(&cartID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrItemNotFound
		}
		return fmt.Errorf("update qty: %w", err)
	}

	r.bumpTTL(ctx, cartID)
	return nil
}

func (r *Repository) RemoveItem(ctx context.Context, userID, itemID int64) error {
	var cartID int64

	err := r.db.QueryRow(ctx, `
DELETE FROM cart_items
WHERE id = $2
  AND cart_id = (
    SELECT id
    FROM carts
    WHERE user_id = $1
      AND status = 'active'
      AND (expires_at IS NULL OR expires_at > now())
    LIMIT 1
  )
RETURNING cart_id
`, userID, itemID).Scan(&cartID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrItemNotFound
		}
		return fmt.Errorf("remove item: %w", err)
	}

	r.bumpTTL(ctx, cartID)
	return nil
}

func (r *Repository) Clear(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
DELETE FROM cart_items
WHERE cart_id = (
  SELECT id
  FROM carts
  WHERE user_id = $1
    AND status = 'active'
    AND (expires_at IS NULL OR expires_at > now())
  LIMIT 1
)`, userID)
	return err
}

// UnlockCheckoutCart re-opens a cart when online payment fails or is
// cancelled. Idempotent.
func (r *Repository) UnlockCheckoutCart(ctx context.Context, orderID int64) error {
	_, err := r.db.Exec(ctx, `
UPDATE carts
   SET status='active', checkout_order_id=NULL, updated_at=now()
 WHERE checkout_order_id=$1 AND status='checkout_pending'
`, orderID)
	return err
}

// ConvertCheckoutCart finalizes the cart after payment is confirmed. Only a
// cart still linked to the order and in checkout_pending converts, which
// keeps replayed webhooks from touching a newer cart.
func (r *Repository) ConvertCheckoutCart(ctx context.Context, orderID int64) error {
	_, err := r.db.Exec(ctx, `
UPDATE carts
   SET status='converted', checkout_order_id=NULL, updated_at=now()
 WHERE checkout_order_id=$1 AND status='checkout_pending'
`, orderID)
	return err
}

// GetView returns the user's open cart with priced lines, or nil when the
// user has no open cart.
func (r *Repository) GetView(ctx context.Context, userID int64) (*CartView, error) {
	var v CartView

	err := r.db.QueryRow(ctx, `
SELECT id, user_id, status, expires_at, checkout_order_id, created_at, updated_at
FROM carts
WHERE user_id = $1
  AND status IN ('active','checkout_pending')
  AND (expires_at IS NULL OR expires_at > now())
ORDER BY
  CASE status WHEN 'checkout_pending' THEN 1 WHEN 'active' THEN 2 ELSE 3 END,
  updated_at DESC
LIMIT 1
`, userID).Scan(
		&v.Cart.ID,
		&v.Cart.UserID,
		&v.Cart.Status,
		&v.Cart.ExpiresAt,
		&v.Cart.CheckoutOrderID,
		&v.Cart.CreatedAt,
		&v.Cart.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return r.fillLines(ctx, &v)
}

func (r *Repository) fillLines(ctx context.Context, v *CartView) (*CartView, error) {
	rows, err := r.db.Query(ctx, `
SELECT
  ci.id,
  p.id,
  p.name,
  p.category,
  ci.quantity,
  ci.price_cents,
  ci.quantity * ci.price_cents
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.id ASC
`, v.Cart.ID)
	if err != nil {
		return nil, fmt.Errorf("cart lines: %w", err)
	}
	defer rows.Close()

	v.Items = nil
	v.TotalCents = 0

	for rows.Next() {
		var line CartLine
		if err := rows.Scan(
			&line.ItemID,
			&line.ProductID,
			&line.ProductName,
			&line.Category,
			&line.Quantity,
			&line.UnitPriceCents,
			&line.LineTotalCents,
		); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		v.TotalCents += line.LineTotalCents
		v.Items = append(v.Items, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cart lines rows: %w", err)
	}

	return v, nil
}

// MarkExpiredAsAbandoned is called from housekeeping to stop expired carts
// from blocking the one-open-cart-per-user constraint.
func (r *Repository) MarkExpiredAsAbandoned(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
UPDATE carts
SET status = 'abandoned',
    updated_at = now()
WHERE status = 'active'
  AND expires_at IS NOT NULL
  AND expires_at <= now()
`)
	if err != nil {
		return 0, fmt.Errorf("mark abandoned: %w", err)
	}
	return tag.RowsAffected(), nil
}
