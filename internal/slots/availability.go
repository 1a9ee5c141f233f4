package slots

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DayName resolves the lowercase weekday name ("monday" ... "sunday") for a
// YYYY-MM-DD calendar date. The date is parsed as a plain calendar day, not
// shifted through the runtime's local timezone.
func DayName(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return strings.ToLower(t.Weekday().String()), nil
}

// ConfiguredFor picks the slot labels a room offers on the given date:
// the per-weekday availability map when the room has one, otherwise the
// legacy flat list. A room with neither is simply fully unavailable.
func ConfiguredFor(availability map[string][]string, flat []string, date string) ([]string, error) {
	day, err := DayName(date)
	if err != nil {
		return nil, err
	}
	if availability != nil {
		if labels, ok := availability[day]; ok {
			return labels, nil
		}
	}
	return flat, nil
}

// AvailableSlots filters the configured labels down to those a booking of
// durationHours starting at that label could take without overlapping an
// existing pending or confirmed booking for the room on the date.
//
// The configured list is normalized to chronological order first. For
// multi-hour bookings, each of the next (durationHours-1) list entries must
// be exactly one hour after its predecessor: a declared gap in the
// configured slots excludes a multi-hour booking that would span it, even
// when no existing booking conflicts. The gap may be a deliberate break,
// so the booking is not allowed to bridge it by time arithmetic alone.
//
// An empty configured list yields an empty result; that is a valid "fully
// unavailable" answer, not an error.
func AvailableSlots(configured []string, date string, durationHours int, existing []Booking, roomID int64) ([]string, error) {
	if durationHours < 1 {
		return nil, fmt.Errorf("duration must be at least 1 hour, got %d", durationHours)
	}
	if len(configured) == 0 {
		return []string{}, nil
	}

	ordered := make([]slot, 0, len(configured))
	for _, label := range configured {
		start, err := ParseLabel(label)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, slot{label: label, start: start})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].start < ordered[j].start
	})

	available := make([]string, 0, len(ordered))
	for i, s := range ordered {
		if durationHours > 1 {
			if !consecutiveFrom(ordered, i, durationHours) {
				continue
			}
		}

		candidate := Interval{
			RoomID:      roomID,
			Date:        date,
			StartMinute: s.start,
			EndMinute:   s.start + MinuteOffset(durationHours*60),
		}
		blocked, err := IsSlotBlocked(candidate, existing)
		if err != nil {
			return nil, err
		}
		if !blocked {
			available = append(available, s.label)
		}
	}
	return available, nil
}

type slot struct {
	label string
	start MinuteOffset
}

// consecutiveFrom reports whether the (durationHours-1) entries following
// position i each start exactly one hour after the previous entry.
func consecutiveFrom(ordered []slot, i, durationHours int) bool {
	for k := 1; k < durationHours; k++ {
		j := i + k
		if j >= len(ordered) {
			return false
		}
		if ordered[j].start != ordered[i].start+MinuteOffset(k*60) {
			return false
		}
	}
	return true
}
