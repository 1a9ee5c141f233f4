package admindashboard

import "context"

type Overview struct {
	// Users
	TotalUsers       int64 `json:"total_users"`
	TotalActiveUsers int64 `json:"total_active_users"`

	// Rooms
	TotalRooms        int64 `json:"total_rooms"`
	TotalKaraokeRooms int64 `json:"total_karaoke_rooms"`
	TotalN64Booths    int64 `json:"total_n64_booths"`
	TotalCafeTables   int64 `json:"total_cafe_tables"`

	// Bookings
	TotalBookings          int64 `json:"total_bookings"`
	TotalPendingBookings   int64 `json:"total_pending_bookings"`
	TotalConfirmedBookings int64 `json:"total_confirmed_bookings"`
	TotalCancelledBookings int64 `json:"total_cancelled_bookings"`
	TotalCompletedBookings int64 `json:"total_completed_bookings"`
	BookingsToday          int64 `json:"bookings_today"`

	// Revenue
	BookingRevenueCents    int64 `json:"booking_revenue_cents"`
	OrderRevenueCents      int64 `json:"order_revenue_cents"`
	GiftCardSalesCents     int64 `json:"gift_card_sales_cents"`
	GiftCardLiabilityCents int64 `json:"gift_card_liability_cents"`

	// Store
	TotalOrders     int64 `json:"total_orders"`
	OrdersToday     int64 `json:"orders_today"`
	TotalProducts   int64 `json:"total_products"`
	ActiveGiftCards int64 `json:"active_gift_cards"`
}

type Store interface {
	GetOverview(ctx context.Context) (*Overview, error)
}
