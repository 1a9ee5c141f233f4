package slots

// Booking statuses. Only pending and confirmed bookings block a slot;
// cancelled and completed bookings never do.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Interval is a half-open [StartMinute, EndMinute) window on a calendar
// date for a single room. EndMinute may exceed 1440 when a booking runs
// past midnight; comparisons stay on the raw values so late bookings still
// overlap correctly within their own date.
type Interval struct {
	RoomID      int64
	Date        string // YYYY-MM-DD calendar date, no time component
	StartMinute MinuteOffset
	EndMinute   MinuteOffset
}

// Booking is the minimal view of a persisted booking the availability
// checker needs. The storage layer maps its rows into this shape.
type Booking struct {
	RoomID        int64
	Date          string
	TimeLabel     string
	DurationHours int
	Status        string
}

// NewInterval converts a (date, label, duration) triple into a comparable
// interval. The cleanup buffer is NOT applied here: conflicts reserve the
// full nominal duration so the buffer belongs to the next booking, never
// the current one.
func NewInterval(roomID int64, date, label string, durationHours int) (Interval, error) {
	start, err := ParseLabel(label)
	if err != nil {
		return Interval{}, err
	}
	return Interval{
		RoomID:      roomID,
		Date:        date,
		StartMinute: start,
		EndMinute:   start + MinuteOffset(durationHours*60),
	}, nil
}

// Overlaps reports whether two intervals share any time. Touching
// endpoints (one booking ending exactly when another starts) do not count.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.StartMinute < other.EndMinute && other.StartMinute < iv.EndMinute
}

// Blocks reports whether a booking status participates in conflict checks.
func Blocks(status string) bool {
	return status == StatusPending || status == StatusConfirmed
}

// IsSlotBlocked reports whether the candidate interval overlaps any
// pending or confirmed booking for the same room and date. A stored
// booking with an unparseable time label surfaces ErrInvalidTimeLabel
// rather than being skipped.
func IsSlotBlocked(candidate Interval, existing []Booking) (bool, error) {
	for _, b := range existing {
		if b.RoomID != candidate.RoomID || b.Date != candidate.Date {
			continue
		}
		if !Blocks(b.Status) {
			continue
		}
		iv, err := NewInterval(b.RoomID, b.Date, b.TimeLabel, b.DurationHours)
		if err != nil {
			return false, err
		}
		if candidate.Overlaps(iv) {
			return true, nil
		}
	}
	return false, nil
}
