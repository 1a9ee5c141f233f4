package giftcards

import (
	"context"
	"errors"
	"fmt"

	"eightbitbar/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound            = errors.New("gift card not found")
	ErrInsufficientBalance = errors.New("insufficient gift card balance")
	ErrNotRedeemable       = errors.New("gift card is not redeemable")
)

type Store interface {
	Create(ctx context.Context, card *GiftCard) error
	GetByCode(ctx context.Context, code string) (*GiftCard, error)
	MarkPaid(ctx context.Context, cardID int64) error
	Redeem(ctx context.Context, code string, amountCents int64, orderID *int64) (*GiftCard, error)
	Void(ctx context.Context, cardID int64) error
	List(ctx context.Context, status string, limit, offset int) ([]GiftCard, int, error)
	Redemptions(ctx context.Context, cardID int64) ([]Redemption, error)
	OutstandingLiabilityCents(ctx context.Context) (int64, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

func (r *Repository) Create(ctx context.Context, card *GiftCard) error {
	const query = `
        INSERT INTO gift_cards (code, initial_cents, balance_cents, status,
                                purchaser_user_id, recipient_email, message, payment_status)
        VALUES ($1, $2, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `
	return r.db.QueryRow(ctx, query,
		card.Code,
		card.InitialCents,
		card.Status,
		card.PurchaserUserID,
		card.RecipientEmail,
		card.Message,
		card.PaymentStatus,
	).Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*GiftCard, error) {
	const query = `
        SELECT id, code, initial_cents, balance_cents, status,
               purchaser_user_id, recipient_email, message, payment_status, paid_at,
               created_at, updated_at
        FROM gift_cards
        WHERE code = $1
    `
	var c GiftCard
	err := r.db.QueryRow(ctx, query, Normalize(code)).Scan(
		&c.ID,
		&c.Code,
		&c.InitialCents,
		&c.BalanceCents,
		&c.Status,
		&c.PurchaserUserID,
		&c.RecipientEmail,
		&c.Message,
		&c.PaymentStatus,
		&c.PaidAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get gift card: %w", err)
	}
	return &c, nil
}

func (r *Repository) MarkPaid(ctx context.Context, cardID int64) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE gift_cards
        SET payment_status = 'paid', paid_at = now(), updated_at = now()
        WHERE id = $1 AND payment_status <> 'paid'
    `, cardID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Redeem draws amountCents from the card and records the redemption. The
// balance check and decrement happen in a single UPDATE so two concurrent
// redemptions cannot both succeed on the last dollar; a card drained to
// zero flips to redeemed in the same statement.
func (r *Repository) Redeem(ctx context.Context, code string, amountCents int64, orderID *int64) (*GiftCard, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("redemption amount must be positive")
	}

	const query = `
        UPDATE gift_cards
        SET balance_cents = balance_cents - $2,
            status = CASE WHEN balance_cents - $2 = 0 THEN 'redeemed' ELSE status END,
            updated_at = now()
        WHERE code = $1
          AND status = 'active'
          AND payment_status = 'paid'
          AND balance_cents >= $2
        RETURNING id, code, initial_cents, balance_cents, status,
                  purchaser_user_id, recipient_email, message, payment_status, paid_at,
                  created_at, updated_at
    `
	var c GiftCard
	err := r.db.QueryRow(ctx, query, Normalize(code), amountCents).Scan(
		&c.ID,
		&c.Code,
		&c.InitialCents,
		&c.BalanceCents,
		&c.Status,
		&c.PurchaserUserID,
		&c.RecipientEmail,
		&c.Message,
		&c.PaymentStatus,
		&c.PaidAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyRedeemFailure(ctx, code, amountCents)
		}
		return nil, fmt.Errorf("redeem gift card: %w", err)
	}

	if _, err := r.db.Exec(ctx, `
        INSERT INTO gift_card_redemptions (gift_card_id, order_id, amount_cents)
        VALUES ($1, $2, $3)
    `, c.ID, orderID, amountCents); err != nil {
		return nil, fmt.Errorf("record redemption: %w", err)
	}

	return &c, nil
}

// classifyRedeemFailure distinguishes "no such card" from "card exists but
// cannot cover the amount" so the UI can show the right message.
func (r *Repository) classifyRedeemFailure(ctx context.Context, code string, amountCents int64) error {
	card, err := r.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if card.Status != StatusActive || card.PaymentStatus != "paid" {
		return ErrNotRedeemable
	}
	if card.BalanceCents < amountCents {
		return ErrInsufficientBalance
	}
	return ErrNotRedeemable
}

func (r *Repository) Void(ctx context.Context, cardID int64) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE gift_cards
        SET status = 'void', updated_at = now()
        WHERE id = $1 AND status <> 'void'
    `, cardID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]GiftCard, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	if offset < 0 {
		offset = 0
	}

	where := "1=1"
	args := []any{}
	arg := 1

	if status != "" {
		where += fmt.Sprintf(" AND status = $%d", arg)
		args = append(args, status)
		arg++
	}

	q := fmt.Sprintf(`
        SELECT id, code, initial_cents, balance_cents, status,
               purchaser_user_id, recipient_email, message, payment_status, paid_at,
               created_at, updated_at,
               COUNT(*) OVER() AS total
        FROM gift_cards
        WHERE %s
        ORDER BY id DESC
        LIMIT $%d OFFSET $%d
    `, where, arg, arg+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list gift cards: %w", err)
	}
	defer rows.Close()

	var out []GiftCard
	total := 0
	for rows.Next() {
		var c GiftCard
		var t int
		if err := rows.Scan(
			&c.ID, &c.Code, &c.InitialCents, &c.BalanceCents, &c.Status,
			&c.PurchaserUserID, &c.RecipientEmail, &c.Message, &c.PaymentStatus, &c.PaidAt,
			&c.CreatedAt, &c.UpdatedAt, &t,
		); err != nil {
			return nil, 0, err
		}
		if total == 0 {
			total = t
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *Repository) Redemptions(ctx context.Context, cardID int64) ([]Redemption, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, gift_card_id, order_id, amount_cents, created_at
        FROM gift_card_redemptions
        WHERE gift_card_id = $1
        ORDER BY created_at DESC
    `, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Redemption
	for rows.Next() {
		var rd Redemption
		if err := rows.Scan(&rd.ID, &rd.GiftCardID, &rd.OrderID, &rd.AmountCents, &rd.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

// OutstandingLiabilityCents sums the unredeemed balance across paid,
// active cards. Dashboard metric.
func (r *Repository) OutstandingLiabilityCents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
        SELECT COALESCE(SUM(balance_cents), 0)
        FROM gift_cards
        WHERE status = 'active' AND payment_status = 'paid'
    `).Scan(&total)
	return total, err
}
