package rooms

import "time"

// Room types as stored in the rooms.room_type column.
const (
	TypeKaraoke = "karaoke"
	TypeN64     = "n64"
	TypeCafe    = "cafe"
)

// Room is a bookable unit: a karaoke room, an N64 gaming booth, or a café
// table. Karaoke and N64 rooms advertise 12-hour labels ("5:00 PM"); café
// tables use 24-hour labels ("17:00").
type Room struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	RoomType     string    `json:"room_type"`
	Description  *string   `json:"description,omitempty" swaggertype:"string"`
	MaxPeople    int       `json:"max_people"`
	PriceCents   int64     `json:"price_cents"` // per hour
	TimeSlots    []string  `json:"time_slots"`  // legacy flat list, pre per-day availability
	WeekDays     []string  `json:"week_days,omitempty"`
	ImageURLs    []string  `json:"image_urls"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Availability maps lowercase weekday names to that day's slot labels.
	// Rooms predating per-day availability leave it empty and fall back to
	// TimeSlots.
	Availability map[string][]string `json:"availability,omitempty"`
}

// DaySlots is one per-weekday slot configuration row.
type DaySlots struct {
	RoomID    int64    `json:"room_id"`
	DayOfWeek string   `json:"day_of_week"`
	TimeSlots []string `json:"time_slots"`
}

type Filter struct {
	RoomType   string // empty = all
	ActiveOnly bool
}
