package bookings

import (
	"context"
	"errors"
	"fmt"

	"eightbitbar/internal/slots"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("booking not found")

// ConflictConstraint is the partial unique index on (room_id, date,
// time_label) for pending/confirmed rows. Inserts racing past the
// in-request availability check land here and surface as a 23505, which
// the handler maps to a 409.
const ConflictConstraint = "uniq_room_date_slot_active"

type Store interface {
	ListForRoomDate(ctx context.Context, roomID int64, date string) ([]slots.Booking, error)
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, bookingID int64) (*Booking, error)
	GetOwner(ctx context.Context, bookingID int64) (*int64, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	MarkPaid(ctx context.Context, bookingID int64, method string) error
	ListByUser(ctx context.Context, userID int64, filter Filter) ([]UserBooking, error)
	ListForDate(ctx context.Context, date string, status string) ([]DayBooking, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// ListForRoomDate returns the bookings that participate in availability
// checks for a room on a date, already shaped for the slots package. The
// status filter lives in SQL so cancelled and completed rows never reach
// the checker.
func (r *Repository) ListForRoomDate(ctx context.Context, roomID int64, date string) ([]slots.Booking, error) {
	const query = `
        SELECT room_id, date, time_label, duration_hours, status
        FROM bookings
        WHERE room_id = $1
          AND date = $2
          AND status IN ('pending', 'confirmed')
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, roomID, date)
	if err != nil {
		return nil, fmt.Errorf("bookings for date: %w", err)
	}
	defer rows.Close()

	var out []slots.Booking
	for rows.Next() {
		var b slots.Booking
		if err := rows.Scan(&b.RoomID, &b.Date, &b.TimeLabel, &b.DurationHours, &b.Status); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repository) Create(ctx context.Context, booking *Booking) error {
	const query = `
        INSERT INTO bookings (
            room_id, user_id, date, time_label, duration_hours, status,
            total_cents, payment_status, payment_method,
            customer_name, customer_email, customer_phone, note
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at, updated_at
    `
	return r.db.QueryRow(ctx, query,
		booking.RoomID,
		booking.UserID,
		booking.Date,
		booking.TimeLabel,
		booking.DurationHours,
		booking.Status,
		booking.TotalCents,
		booking.PaymentStatus,
		booking.PaymentMethod,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.Note,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *Repository) GetByID(ctx context.Context, bookingID int64) (*Booking, error) {
	const query = `
        SELECT id, room_id, user_id, date, time_label, duration_hours, status,
               total_cents, payment_status, payment_method, paid_at,
               customer_name, customer_email, customer_phone, note,
               created_at, updated_at
        FROM bookings
        WHERE id = $1
    `
	var b Booking
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&b.ID,
		&b.RoomID,
		&b.UserID,
		&b.Date,
		&b.TimeLabel,
		&b.DurationHours,
		&b.Status,
		&b.TotalCents,
		&b.PaymentStatus,
		&b.PaymentMethod,
		&b.PaidAt,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.Note,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (r *Repository) GetOwner(ctx context.Context, bookingID int64) (*int64, error) {
	var userID *int64
	err := r.db.QueryRow(ctx, `SELECT user_id FROM bookings WHERE id = $1`, bookingID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return userID, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	const query = `
        UPDATE bookings
        SET status = $1,
            updated_at = now()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, bookingID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) MarkPaid(ctx context.Context, bookingID int64, method string) error {
	const query = `
        UPDATE bookings
        SET payment_status = 'paid',
            payment_method = $2,
            paid_at = now(),
            updated_at = now()
        WHERE id = $1
          AND payment_status <> 'paid'
    `
	tag, err := r.db.Exec(ctx, query, bookingID, method)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, filter Filter) ([]UserBooking, error) {
	base := `
        SELECT b.id, b.room_id, r.name, r.room_type,
               b.date, b.time_label, b.duration_hours, b.status, b.total_cents, b.created_at
        FROM bookings b
        JOIN rooms r ON r.id = b.room_id
        WHERE b.user_id = $1`

	args := []any{userID}
	idx := 2

	if filter.Status != nil {
		base += fmt.Sprintf(" AND b.status = $%d", idx)
		args = append(args, *filter.Status)
		idx++
	}

	base += fmt.Sprintf(" ORDER BY b.date DESC, b.created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, filter.Limit, filter.offset())

	rows, err := r.db.Query(ctx, base, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UserBooking
	for rows.Next() {
		var ub UserBooking
		if err := rows.Scan(
			&ub.BookingID,
			&ub.RoomID,
			&ub.RoomName,
			&ub.RoomType,
			&ub.Date,
			&ub.TimeLabel,
			&ub.DurationHours,
			&ub.Status,
			&ub.TotalCents,
			&ub.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, ub)
	}
	return out, rows.Err()
}

// ListForDate feeds the staff calendar: every booking on a date across all
// rooms, optionally filtered to one status.
func (r *Repository) ListForDate(ctx context.Context, date string, status string) ([]DayBooking, error) {
	query := `
        SELECT b.id, b.room_id, r.name, r.room_type,
               b.time_label, b.duration_hours, b.status, b.total_cents, b.payment_status,
               b.customer_name, b.customer_phone
        FROM bookings b
        JOIN rooms r ON r.id = b.room_id
        WHERE b.date = $1`

	args := []any{date}
	if status != "" {
		query += " AND b.status = $2"
		args = append(args, status)
	}
	query += " ORDER BY r.room_type, r.name, b.created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DayBooking
	for rows.Next() {
		var db DayBooking
		if err := rows.Scan(
			&db.BookingID,
			&db.RoomID,
			&db.RoomName,
			&db.RoomType,
			&db.TimeLabel,
			&db.DurationHours,
			&db.Status,
			&db.TotalCents,
			&db.PaymentStatus,
			&db.CustomerName,
			&db.CustomerPhone,
		); err != nil {
			return nil, err
		}
		out = append(out, db)
	}
	return out, rows.Err()
}
