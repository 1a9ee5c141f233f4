package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eightbitbar/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("order not found")

type Repository struct {
	q   dbx.Querier
	gen *OrderNumberGenerator
}

func NewRepository(q dbx.Querier, gen *OrderNumberGenerator) *Repository {
	if gen == nil {
		panic("orders: OrderNumberGenerator is nil")
	}
	return &Repository{q: q, gen: gen}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Order, error) {
	var o Order
	err := r.q.QueryRow(ctx, `
SELECT id,user_id,order_number,status,payment_status,payment_method,paid_at,
       subtotal_cents,gift_card_cents,due_cents,gift_card_code,created_at
FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.UserID, &o.OrderNumber, &o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaidAt,
			&o.SubtotalCents, &o.GiftCardCents, &o.DueCents, &o.GiftCardCode, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Tender carries the amounts the checkout handler already settled with the
// gift card repository. giftCardCents of 0 means no card was applied.
type Tender struct {
	GiftCardCents int64
	GiftCardCode  *string
}

// CreateFromCart snapshots the user's active cart into an immutable order.
// Line prices are copied from cart_items, so the amount sent to the payment
// gateway always matches what the cart showed.
//
// Must be called inside a transaction: the cart row is locked FOR UPDATE so
// two concurrent checkouts cannot both create an order from the same cart,
// and the gift card decrement in the same transaction stays atomic with the
// order insert.
func (r *Repository) CreateFromCart(
	ctx context.Context,
	userID int64,
	method string, // "stripe" | "counter"
	tender Tender,
) (*Order, int64 /*cartID*/, error) {

	var cartID int64
	err := r.q.QueryRow(ctx, `
		SELECT id
		FROM carts
		WHERE user_id=$1 AND status='active'
		ORDER BY id DESC
		LIMIT 1
		FOR UPDATE
	`, userID).Scan(&cartID)
	if err != nil {
		return nil, 0, fmt.Errorf("no active cart: %w", err)
	}

	var subtotal int64
	if err := r.q.QueryRow(ctx, `
SELECT COALESCE(SUM(quantity * price_cents), 0)
FROM cart_items
WHERE cart_id = $1
`, cartID).Scan(&subtotal); err != nil {
		return nil, 0, fmt.Errorf("cart subtotal: %w", err)
	}
	if subtotal <= 0 {
		return nil, 0, fmt.Errorf("cart is empty")
	}
	if tender.GiftCardCents < 0 || tender.GiftCardCents > subtotal {
		return nil, 0, fmt.Errorf("invalid gift card tender")
	}

	due := subtotal - tender.GiftCardCents

	o := &Order{
		UserID:        userID,
		OrderNumber:   r.gen.Generate(userID),
		SubtotalCents: subtotal,
		GiftCardCents: tender.GiftCardCents,
		DueCents:      due,
		GiftCardCode:  tender.GiftCardCode,
	}

	// Counter orders are handed to staff and settled at the till. Orders
	// fully covered by a gift card are also placed immediately.
	orderStatus := StatusPlaced
	paymentStatus := PaymentPending
	if method == "stripe" && due > 0 {
		orderStatus = StatusAwaitingPayment
	}
	if due == 0 {
		paymentStatus = PaymentPaid
	}

	if err := r.q.QueryRow(ctx, `
		INSERT INTO orders (
		  user_id, order_number, cart_id, status, payment_status, payment_method,
		  subtotal_cents, gift_card_cents, due_cents, gift_card_code, paid_at
		) VALUES (
		  $1, $2, $3, $4, $5, $6,
		  $7, $8, $9, $10,
		  CASE WHEN $5 = 'paid' THEN now() ELSE NULL END
		)
		RETURNING id, created_at
	`,
		userID, o.OrderNumber, cartID, orderStatus, paymentStatus, method,
		o.SubtotalCents, o.GiftCardCents, o.DueCents, o.GiftCardCode,
	).Scan(&o.ID, &o.CreatedAt); err != nil {
		return nil, 0, fmt.Errorf("create order: %w", err)
	}
	o.Status = orderStatus
	o.PaymentStatus = paymentStatus
	o.PaymentMethod = &method

	if _, err := r.q.Exec(ctx, `
INSERT INTO order_items (
  order_id, product_id, product_name, category,
  quantity, unit_price_cents, total_price_cents
)
SELECT
  $2,
  p.id,
  p.name,
  p.category,
  ci.quantity,
  ci.price_cents,
  ci.quantity * ci.price_cents
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
`, cartID, o.ID); err != nil {
		return nil, 0, fmt.Errorf("copy order_items: %w", err)
	}

	// Cart transition: an online payment locks the cart until the webhook
	// settles; everything else converts immediately.
	if orderStatus == StatusAwaitingPayment {
		cmd, err := r.q.Exec(ctx, `
UPDATE carts
   SET status='checkout_pending',
       checkout_order_id=$2,
       updated_at=now()
 WHERE id=$1
   AND status='active'
`, cartID, o.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("lock cart for payment: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return nil, 0, fmt.Errorf("cart not active (cannot lock)")
		}
	} else {
		cmd, err := r.q.Exec(ctx, `
UPDATE carts
   SET status='converted',
       checkout_order_id=NULL,
       updated_at=now()
 WHERE id=$1
   AND status='active'
`, cartID)
		if err != nil {
			return nil, 0, fmt.Errorf("convert cart: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return nil, 0, fmt.Errorf("cart not active (cannot convert)")
		}
	}

	return o, cartID, nil
}

// MarkPaid settles the outstanding amount on an order and moves it to
// placed. Idempotent against webhook replays.
func (r *Repository) MarkPaid(ctx context.Context, orderID int64, method string, paidAt time.Time) error {
	_, err := r.q.Exec(ctx, `
UPDATE orders
SET payment_status = 'paid',
    payment_method = $2,
    paid_at        = COALESCE(paid_at, $3),
    status         = CASE WHEN status = 'awaiting_payment' THEN 'placed' ELSE status END,
    updated_at     = now()
WHERE id = $1
  AND payment_status <> 'paid'
`, orderID, method, paidAt)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	return nil
}

func (r *Repository) MarkPaymentFailed(ctx context.Context, orderID int64) error {
	_, err := r.q.Exec(ctx, `
UPDATE orders
SET payment_status = 'failed',
    updated_at     = now()
WHERE id = $1
  AND payment_status = 'pending'
`, orderID)
	if err != nil {
		return fmt.Errorf("mark payment failed: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(
	ctx context.Context,
	userID int64,
	status string,
	limit, offset int,
) ([]Order, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.q.Query(ctx, `
SELECT id,user_id,order_number,status,payment_status,payment_method,paid_at,
       subtotal_cents,gift_card_cents,due_cents,gift_card_code,created_at,
       COUNT(*) OVER() AS total_count
FROM orders
WHERE user_id = $1
  AND ($2 = '' OR status = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4`,
		userID, status, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var (
		out   []Order
		total int
	)
	for rows.Next() {
		var o Order
		var t int
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.OrderNumber, &o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaidAt,
			&o.SubtotalCents, &o.GiftCardCents, &o.DueCents, &o.GiftCardCode, &o.CreatedAt,
			&t,
		); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		if total == 0 {
			total = t
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

// ListAll is the staff view with an optional status filter.
func (r *Repository) ListAll(ctx context.Context, status string, limit, offset int) ([]Order, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.q.Query(ctx, `
SELECT id,user_id,order_number,status,payment_status,payment_method,paid_at,
       subtotal_cents,gift_card_cents,due_cents,gift_card_code,created_at,
       COUNT(*) OVER() AS total_count
FROM orders
WHERE ($1 = '' OR status = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("staff list orders: %w", err)
	}
	defer rows.Close()

	var (
		out   []Order
		total int
	)
	for rows.Next() {
		var o Order
		var t int
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.OrderNumber, &o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaidAt,
			&o.SubtotalCents, &o.GiftCardCents, &o.DueCents, &o.GiftCardCode, &o.CreatedAt,
			&t,
		); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		if total == 0 {
			total = t
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *Repository) loadItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	rows, err := r.q.Query(ctx, `
SELECT id, order_id, product_id, product_name, category,
       quantity, unit_price_cents, total_price_cents
FROM order_items
WHERE order_id=$1
ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("order items: %w", err)
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Category,
			&it.Quantity, &it.UnitPriceCents, &it.TotalPriceCents,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) GetDetailForUser(ctx context.Context, userID, orderID int64) (*OrderDetail, error) {
	var o Order
	err := r.q.QueryRow(ctx, `
SELECT id,user_id,order_number,status,payment_status,payment_method,paid_at,
       subtotal_cents,gift_card_cents,due_cents,gift_card_code,created_at
FROM orders
WHERE id=$1 AND user_id=$2`,
		orderID, userID,
	).Scan(
		&o.ID, &o.UserID, &o.OrderNumber, &o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaidAt,
		&o.SubtotalCents, &o.GiftCardCents, &o.DueCents, &o.GiftCardCode, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items, err := r.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: o, Items: items}, nil
}

func (r *Repository) GetDetail(ctx context.Context, orderID int64) (*OrderDetail, error) {
	o, err := r.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := r.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	_, err := r.q.Exec(ctx, `
UPDATE orders
SET status     = $2,
    updated_at = now()
WHERE id = $1`,
		orderID, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
