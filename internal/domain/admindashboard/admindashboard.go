package admindashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) GetOverview(ctx context.Context) (*Overview, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE is_active = true),

			(SELECT COUNT(*) FROM rooms),
			(SELECT COUNT(*) FROM rooms WHERE room_type = 'karaoke'),
			(SELECT COUNT(*) FROM rooms WHERE room_type = 'n64'),
			(SELECT COUNT(*) FROM rooms WHERE room_type = 'cafe'),

			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM bookings WHERE status = 'pending'),
			(SELECT COUNT(*) FROM bookings WHERE status = 'confirmed'),
			(SELECT COUNT(*) FROM bookings WHERE status = 'cancelled'),
			(SELECT COUNT(*) FROM bookings WHERE status = 'completed'),
			(SELECT COUNT(*) FROM bookings WHERE date = to_char(now(), 'YYYY-MM-DD')),

			(SELECT COALESCE(SUM(total_cents), 0) FROM bookings WHERE payment_status = 'paid'),
			(SELECT COALESCE(SUM(subtotal_cents), 0) FROM orders WHERE payment_status = 'paid'),
			(SELECT COALESCE(SUM(initial_cents), 0) FROM gift_cards WHERE payment_status = 'paid'),
			(SELECT COALESCE(SUM(balance_cents), 0) FROM gift_cards WHERE status = 'active' AND payment_status = 'paid'),

			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE created_at >= date_trunc('day', now())),
			(SELECT COUNT(*) FROM products WHERE is_active = true),
			(SELECT COUNT(*) FROM gift_cards WHERE status = 'active')
	`

	var o Overview
	err := r.db.QueryRow(ctx, q).Scan(
		&o.TotalUsers,
		&o.TotalActiveUsers,

		&o.TotalRooms,
		&o.TotalKaraokeRooms,
		&o.TotalN64Booths,
		&o.TotalCafeTables,

		&o.TotalBookings,
		&o.TotalPendingBookings,
		&o.TotalConfirmedBookings,
		&o.TotalCancelledBookings,
		&o.TotalCompletedBookings,
		&o.BookingsToday,

		&o.BookingRevenueCents,
		&o.OrderRevenueCents,
		&o.GiftCardSalesCents,
		&o.GiftCardLiabilityCents,

		&o.TotalOrders,
		&o.OrdersToday,
		&o.TotalProducts,
		&o.ActiveGiftCards,
	)
	if err != nil {
		return nil, fmt.Errorf("get admin overview: %w", err)
	}

	return &o, nil
}
