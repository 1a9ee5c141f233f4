package slots

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseLabel_12HourRoundTrip(t *testing.T) {
	for hour := 1; hour <= 12; hour++ {
		for _, meridiem := range []string{"AM", "PM"} {
			label := fmt.Sprintf("%d:00 %s", hour, meridiem)
			offset, err := ParseLabel(label)
			if err != nil {
				t.Fatalf("ParseLabel(%q): %v", label, err)
			}
			if got := FormatLabel(offset, Style12Hour); got != label {
				t.Errorf("round trip %q: got %q", label, got)
			}
		}
	}
}

func TestParseLabel_MidnightNoon(t *testing.T) {
	cases := []struct {
		label string
		want  MinuteOffset
	}{
		{"12:00 AM", 0},
		{"12:00 PM", 720},
		{"12:30 AM", 30},
		{"1:00 AM", 60},
		{"11:59 PM", 1439},
		{"00:00", 0},
		{"17:00", 1020},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseLabel(tc.label)
		if err != nil {
			t.Fatalf("ParseLabel(%q): %v", tc.label, err)
		}
		if got != tc.want {
			t.Errorf("ParseLabel(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestParseLabel_Invalid(t *testing.T) {
	for _, label := range []string{
		"", "5 PM", "25:00", "13:00 PM", "0:30 AM", "5:60 PM", "noon", "17:00:00",
	} {
		if _, err := ParseLabel(label); !errors.Is(err, ErrInvalidTimeLabel) {
			t.Errorf("ParseLabel(%q): want ErrInvalidTimeLabel, got %v", label, err)
		}
	}
}

func TestStyle(t *testing.T) {
	if s, err := Style("5:00 PM"); err != nil || s != Style12Hour {
		t.Errorf("Style(5:00 PM) = %v, %v", s, err)
	}
	if s, err := Style("17:00"); err != nil || s != Style24Hour {
		t.Errorf("Style(17:00) = %v, %v", s, err)
	}
}

func TestEndLabel_CleanupBuffer(t *testing.T) {
	cases := []struct {
		label    string
		duration int
		want     string
	}{
		{"5:00 PM", 1, "5:55 PM"},
		{"5:00 PM", 2, "6:55 PM"},
		{"11:00 PM", 1, "11:55 PM"},
		{"12:00 AM", 1, "12:55 AM"},
		{"17:00", 1, "17:55"},
		{"9:30 PM", 3, "12:25 AM"}, // wraps past midnight, day rollover dropped
	}
	for _, tc := range cases {
		got, err := EndLabel(tc.label, tc.duration, DefaultCleanupMinutes)
		if err != nil {
			t.Fatalf("EndLabel(%q, %d): %v", tc.label, tc.duration, err)
		}
		if got != tc.want {
			t.Errorf("EndLabel(%q, %d) = %q, want %q", tc.label, tc.duration, got, tc.want)
		}
	}
}

func TestEndLabel_BorrowsMinutes(t *testing.T) {
	// 5:00 PM + 1h − 5m crosses an hour boundary downward.
	got, err := EndLabel("6:00 PM", 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != "6:55 PM" {
		t.Errorf("got %q, want 6:55 PM", got)
	}
}

func TestEndLabel_InvalidLabel(t *testing.T) {
	if _, err := EndLabel("sometime", 1, 5); !errors.Is(err, ErrInvalidTimeLabel) {
		t.Errorf("want ErrInvalidTimeLabel, got %v", err)
	}
}
