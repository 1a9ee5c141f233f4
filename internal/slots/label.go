package slots

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimeLabel is returned when a time label matches neither the
// 12-hour ("5:00 PM") nor the 24-hour ("17:00") form. Callers must treat
// this as a hard failure: defaulting a bad label to midnight would make the
// slot look first-available and silently corrupt the overlap check.
var ErrInvalidTimeLabel = errors.New("invalid time label")

// MinuteOffset is minutes elapsed since local midnight, in [0, 1440).
type MinuteOffset int

// LabelStyle selects how a minute offset renders back into a label.
type LabelStyle int

const (
	// Style12Hour renders "5:00 PM" (karaoke and N64 rooms).
	Style12Hour LabelStyle = iota
	// Style24Hour renders "17:00" (café seating).
	Style24Hour
)

const minutesPerDay = 1440

// DefaultCleanupMinutes is the fixed turnover buffer subtracted from the
// displayed end-of-use time. It is never applied to conflict intervals.
const DefaultCleanupMinutes = 5

var (
	re12Hour = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)
	re24Hour = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ParseLabel converts a time-of-day label into a minute offset.
// "12:00 AM" is 0 and "12:00 PM" is 720.
func ParseLabel(label string) (MinuteOffset, error) {
	m, _, err := parseLabel(label)
	return m, err
}

// Style reports which label form the input uses.
func Style(label string) (LabelStyle, error) {
	_, style, err := parseLabel(label)
	return style, err
}

func parseLabel(label string) (MinuteOffset, LabelStyle, error) {
	trimmed := strings.TrimSpace(label)

	if m := re12Hour.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
		}
		meridiem := strings.ToUpper(m[3])
		if meridiem == "PM" && hour != 12 {
			hour += 12
		}
		if meridiem == "AM" && hour == 12 {
			hour = 0
		}
		return MinuteOffset(hour*60 + minute), Style12Hour, nil
	}

	if m := re24Hour.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
		}
		return MinuteOffset(hour*60 + minute), Style24Hour, nil
	}

	return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
}

// FormatLabel renders a minute offset as a label in the given style.
// The offset is normalized modulo 24h, so day rollover is dropped from the
// rendered label.
func FormatLabel(offset MinuteOffset, style LabelStyle) string {
	m := ((int(offset) % minutesPerDay) + minutesPerDay) % minutesPerDay
	hour := m / 60
	minute := m % 60

	if style == Style24Hour {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, meridiem)
}

// EndLabel computes the advertised end-of-use label for a booking:
// start + duration − cleanupMinutes, rendered in the same style as the
// input. The cleanup buffer reserves turnover time for the next booking and
// affects display only; conflict checks always use the full nominal
// duration. Offsets past midnight wrap; the label does not indicate the
// following day.
func EndLabel(label string, durationHours, cleanupMinutes int) (string, error) {
	start, style, err := parseLabel(label)
	if err != nil {
		return "", err
	}
	end := int(start) + durationHours*60 - cleanupMinutes
	return FormatLabel(MinuteOffset(end), style), nil
}
