package rooms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"eightbitbar/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("room not found")

type Store interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, roomID int64) (*Room, error)
	List(ctx context.Context, filter Filter) ([]Room, error)
	Update(ctx context.Context, roomID int64, fields map[string]any) error
	SetActive(ctx context.Context, roomID int64, active bool) error
	AddPhotoURL(ctx context.Context, roomID int64, url string) error
	RemovePhotoURL(ctx context.Context, roomID int64, url string) error
	ReplaceAvailability(ctx context.Context, roomID int64, days []DaySlots) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, room *Room) error {
	slotsJSON, err := json.Marshal(room.TimeSlots)
	if err != nil {
		return fmt.Errorf("marshal time slots: %w", err)
	}
	daysJSON, err := json.Marshal(room.WeekDays)
	if err != nil {
		return fmt.Errorf("marshal week days: %w", err)
	}

	const query = `
        INSERT INTO rooms (name, room_type, description, max_people, price_cents, time_slots, week_days, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at
    `
	return r.db.QueryRow(ctx, query,
		room.Name,
		room.RoomType,
		room.Description,
		room.MaxPeople,
		room.PriceCents,
		slotsJSON,
		daysJSON,
		room.IsActive,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

func (r *Repository) GetByID(ctx context.Context, roomID int64) (*Room, error) {
	const query = `
        SELECT id, name, room_type, description, max_people, price_cents,
               time_slots, week_days, image_urls, is_active, created_at, updated_at
        FROM rooms
        WHERE id = $1
    `
	var room Room
	var slotsJSON, daysJSON, imagesJSON []byte
	err := r.db.QueryRow(ctx, query, roomID).Scan(
		&room.ID,
		&room.Name,
		&room.RoomType,
		&room.Description,
		&room.MaxPeople,
		&room.PriceCents,
		&slotsJSON,
		&daysJSON,
		&imagesJSON,
		&room.IsActive,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}

	_ = json.Unmarshal(slotsJSON, &room.TimeSlots)
	_ = json.Unmarshal(daysJSON, &room.WeekDays)
	_ = json.Unmarshal(imagesJSON, &room.ImageURLs)

	availability, err := r.availabilityFor(ctx, roomID)
	if err != nil {
		return nil, err
	}
	room.Availability = availability

	return &room, nil
}

// availabilityFor loads the per-weekday slot rows into a day→labels map.
// Rooms with no rows return a nil map, which callers treat as "use the
// legacy flat time_slots list".
func (r *Repository) availabilityFor(ctx context.Context, roomID int64) (map[string][]string, error) {
	const query = `
        SELECT day_of_week, time_slots
        FROM room_availability
        WHERE room_id = $1
        ORDER BY day_of_week
    `
	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("room availability: %w", err)
	}
	defer rows.Close()

	var availability map[string][]string
	for rows.Next() {
		var day string
		var slotsJSON []byte
		if err := rows.Scan(&day, &slotsJSON); err != nil {
			return nil, err
		}
		var labels []string
		if err := json.Unmarshal(slotsJSON, &labels); err != nil {
			return nil, fmt.Errorf("unmarshal slots for %s: %w", day, err)
		}
		if availability == nil {
			availability = make(map[string][]string)
		}
		availability[day] = labels
	}
	return availability, rows.Err()
}

func (r *Repository) List(ctx context.Context, filter Filter) ([]Room, error) {
	query := `
        SELECT id, name, room_type, description, max_people, price_cents,
               time_slots, week_days, image_urls, is_active, created_at, updated_at
        FROM rooms
        WHERE 1=1`

	args := []any{}
	idx := 1
	if filter.RoomType != "" {
		query += fmt.Sprintf(" AND room_type = $%d", idx)
		args = append(args, filter.RoomType)
		idx++
	}
	if filter.ActiveOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY room_type, name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var out []Room
	for rows.Next() {
		var room Room
		var slotsJSON, daysJSON, imagesJSON []byte
		if err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.RoomType,
			&room.Description,
			&room.MaxPeople,
			&room.PriceCents,
			&slotsJSON,
			&daysJSON,
			&imagesJSON,
			&room.IsActive,
			&room.CreatedAt,
			&room.UpdatedAt,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(slotsJSON, &room.TimeSlots)
		_ = json.Unmarshal(daysJSON, &room.WeekDays)
		_ = json.Unmarshal(imagesJSON, &room.ImageURLs)
		out = append(out, room)
	}
	return out, rows.Err()
}

// Update patches whitelisted columns. The handler validates field names
// before building the map.
func (r *Repository) Update(ctx context.Context, roomID int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	query := "UPDATE rooms SET updated_at = now()"
	args := []any{}
	idx := 1
	for col, val := range fields {
		query += fmt.Sprintf(", %s = $%d", col, idx)
		args = append(args, val)
		idx++
	}
	query += fmt.Sprintf(" WHERE id = $%d", idx)
	args = append(args, roomID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetActive(ctx context.Context, roomID int64, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE rooms SET is_active = $2, updated_at = now() WHERE id = $1`, roomID, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) AddPhotoURL(ctx context.Context, roomID int64, url string) error {
	const query = `
        UPDATE rooms
        SET image_urls = image_urls || to_jsonb($2::text),
            updated_at = now()
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, roomID, url)
	if err != nil {
		return fmt.Errorf("add photo url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) RemovePhotoURL(ctx context.Context, roomID int64, url string) error {
	const query = `
        UPDATE rooms
        SET image_urls = (
            SELECT COALESCE(jsonb_agg(u), '[]'::jsonb)
            FROM jsonb_array_elements_text(image_urls) AS u
            WHERE u <> $2
        ),
            updated_at = now()
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, roomID, url)
	if err != nil {
		return fmt.Errorf("remove photo url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceAvailability swaps the per-weekday slot configuration in one
// transaction, inserting the new rows with a single pgx.Batch round-trip.
func (r *Repository) ReplaceAvailability(ctx context.Context, roomID int64, days []DaySlots) error {
	return dbx.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM room_availability WHERE room_id = $1`, roomID); err != nil {
			return fmt.Errorf("clear availability: %w", err)
		}

		if len(days) == 0 {
			return nil
		}

		const sql = `
            INSERT INTO room_availability (room_id, day_of_week, time_slots)
            VALUES ($1, $2, $3)
        `
		batch := &pgx.Batch{}
		for _, d := range days {
			slotsJSON, err := json.Marshal(d.TimeSlots)
			if err != nil {
				return fmt.Errorf("marshal slots for %s: %w", d.DayOfWeek, err)
			}
			batch.Queue(sql, roomID, d.DayOfWeek, slotsJSON)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		for i := range days {
			if _, err := br.Exec(); err != nil {
				return fmt.Errorf("insert availability row[%d]: %w", i, err)
			}
		}
		return nil
	})
}
