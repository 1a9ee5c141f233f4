package bookings

import "time"

// Payment state for a booking. Separate from the booking status so a
// confirmed booking can still be awaiting payment at the counter.
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Booking is a persisted reservation of a room slot. The date is a plain
// YYYY-MM-DD calendar day and the start time is stored as the slot label
// the customer picked; both feed the slots package unchanged, so the
// stored rows and the availability math can never disagree about timezone
// handling.
type Booking struct {
	ID            int64      `json:"id"`
	RoomID        int64      `json:"room_id"`
	UserID        *int64     `json:"user_id,omitempty"`
	Date          string     `json:"date"`
	TimeLabel     string     `json:"time"`
	DurationHours int        `json:"duration_hours"`
	Status        string     `json:"status"`
	TotalCents    int64      `json:"total_cents"`
	PaymentStatus string     `json:"payment_status"`
	PaymentMethod *string    `json:"payment_method,omitempty" swaggertype:"string"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CustomerName  *string    `json:"customer_name,omitempty" swaggertype:"string"`
	CustomerEmail *string    `json:"customer_email,omitempty" swaggertype:"string"`
	CustomerPhone *string    `json:"customer_phone,omitempty" swaggertype:"string"`
	Note          *string    `json:"note,omitempty" swaggertype:"string"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// DayBooking is the admin calendar view model for one booking on a date.
type DayBooking struct {
	BookingID     int64   `json:"booking_id"`
	RoomID        int64   `json:"room_id"`
	RoomName      string  `json:"room_name"`
	RoomType      string  `json:"room_type"`
	TimeLabel     string  `json:"time"`
	DurationHours int     `json:"duration_hours"`
	Status        string  `json:"status"`
	TotalCents    int64   `json:"total_cents"`
	PaymentStatus string  `json:"payment_status"`
	CustomerName  *string `json:"customer_name,omitempty" swaggertype:"string"`
	CustomerPhone *string `json:"customer_phone,omitempty" swaggertype:"string"`
}

// UserBooking is the customer-facing booking list view.
type UserBooking struct {
	BookingID     int64     `json:"booking_id"`
	RoomID        int64     `json:"room_id"`
	RoomName      string    `json:"room_name"`
	RoomType      string    `json:"room_type"`
	Date          string    `json:"date"`
	TimeLabel     string    `json:"time"`
	DurationHours int       `json:"duration_hours"`
	Status        string    `json:"status"`
	TotalCents    int64     `json:"total_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

type Filter struct {
	Status *string // nil = no filtering
	Page   int     // 1-based
	Limit  int     // max items per page
}

func (f Filter) offset() int {
	return (f.Page - 1) * f.Limit
}
