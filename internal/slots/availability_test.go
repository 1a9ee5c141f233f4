package slots

import (
	"errors"
	"reflect"
	"testing"
)

func interval(t *testing.T, roomID int64, date, label string, hours int) Interval {
	t.Helper()
	iv, err := NewInterval(roomID, date, label, hours)
	if err != nil {
		t.Fatalf("NewInterval(%q): %v", label, err)
	}
	return iv
}

func TestOverlaps_Symmetric(t *testing.T) {
	a := Interval{StartMinute: 540, EndMinute: 660}
	b := Interval{StartMinute: 600, EndMinute: 720}
	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("expected symmetric overlap")
	}
}

func TestOverlaps_TouchingNotOverlapping(t *testing.T) {
	a := Interval{StartMinute: 540, EndMinute: 600} // 9:00–10:00
	b := Interval{StartMinute: 600, EndMinute: 660} // 10:00–11:00
	if a.Overlaps(b) || b.Overlaps(a) {
		t.Error("touching endpoints must not overlap")
	}
}

func TestIsSlotBlocked(t *testing.T) {
	existing := []Booking{
		{RoomID: 1, Date: "2025-08-23", TimeLabel: "5:00 PM", DurationHours: 1, Status: StatusConfirmed},
	}

	blocked, err := IsSlotBlocked(interval(t, 1, "2025-08-23", "5:00 PM", 1), existing)
	if err != nil {
		t.Fatal(err)
	}
	if !blocked {
		t.Error("same slot must be blocked")
	}

	// Adjacent hour is free: the confirmed booking ends exactly at 6:00 PM.
	blocked, err = IsSlotBlocked(interval(t, 1, "2025-08-23", "6:00 PM", 1), existing)
	if err != nil {
		t.Fatal(err)
	}
	if blocked {
		t.Error("adjacent slot must not be blocked")
	}
}

func TestIsSlotBlocked_IgnoresOtherRoomAndDate(t *testing.T) {
	existing := []Booking{
		{RoomID: 2, Date: "2025-08-23", TimeLabel: "5:00 PM", DurationHours: 1, Status: StatusConfirmed},
		{RoomID: 1, Date: "2025-08-24", TimeLabel: "5:00 PM", DurationHours: 1, Status: StatusConfirmed},
	}
	blocked, err := IsSlotBlocked(interval(t, 1, "2025-08-23", "5:00 PM", 1), existing)
	if err != nil {
		t.Fatal(err)
	}
	if blocked {
		t.Error("bookings for other rooms or dates must not block")
	}
}

func TestIsSlotBlocked_StatusFilter(t *testing.T) {
	for _, status := range []string{StatusCancelled, StatusCompleted} {
		existing := []Booking{
			{RoomID: 1, Date: "2025-08-23", TimeLabel: "5:00 PM", DurationHours: 1, Status: status},
		}
		blocked, err := IsSlotBlocked(interval(t, 1, "2025-08-23", "5:00 PM", 1), existing)
		if err != nil {
			t.Fatal(err)
		}
		if blocked {
			t.Errorf("%s booking must not block", status)
		}
	}

	existing := []Booking{
		{RoomID: 1, Date: "2025-08-23", TimeLabel: "5:00 PM", DurationHours: 1, Status: StatusPending},
	}
	blocked, err := IsSlotBlocked(interval(t, 1, "2025-08-23", "5:00 PM", 1), existing)
	if err != nil {
		t.Fatal(err)
	}
	if !blocked {
		t.Error("pending booking must block")
	}
}

func TestIsSlotBlocked_BadStoredLabel(t *testing.T) {
	existing := []Booking{
		{RoomID: 1, Date: "2025-08-23", TimeLabel: "bogus", DurationHours: 1, Status: StatusConfirmed},
	}
	_, err := IsSlotBlocked(interval(t, 1, "2025-08-23", "5:00 PM", 1), existing)
	if !errors.Is(err, ErrInvalidTimeLabel) {
		t.Errorf("want ErrInvalidTimeLabel, got %v", err)
	}
}

func TestIsSlotBlocked_MultiHourCrossesExisting(t *testing.T) {
	// 5-7 PM candidate overlaps a 6 PM booking even though the start hours differ.
	existing := []Booking{
		{RoomID: 1, Date: "2025-08-23", TimeLabel: "6:00 PM", DurationHours: 1, Status: StatusConfirmed},
	}
	blocked, err := IsSlotBlocked(interval(t, 1, "2025-08-23", "5:00 PM", 2), existing)
	if err != nil {
		t.Fatal(err)
	}
	if !blocked {
		t.Error("multi-hour candidate crossing an existing booking must be blocked")
	}
}

func TestAvailableSlots_SingleHour(t *testing.T) {
	configured := []string{"4:00 PM", "5:00 PM", "6:00 PM"}
	existing := []Booking{
		{RoomID: 1, Date: "2025-08-23", TimeLabel: "5:00 PM", DurationHours: 1, Status: StatusConfirmed},
	}

	got, err := AvailableSlots(configured, "2025-08-23", 1, existing, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"4:00 PM", "6:00 PM"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAvailableSlots_MultiHourContiguity(t *testing.T) {
	// Gap at 4:00 PM: "3:00 PM" cannot start a 2-hour booking (its next
	// configured entry is 5:00 PM, not 4:00 PM) and "5:00 PM" runs out of
	// entries. Only "2:00 PM" remains.
	configured := []string{"2:00 PM", "3:00 PM", "5:00 PM"}

	got, err := AvailableSlots(configured, "2025-08-23", 2, nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2:00 PM"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAvailableSlots_MultiHourBlockedTail(t *testing.T) {
	configured := []string{"4:00 PM", "5:00 PM", "6:00 PM"}
	existing := []Booking{
		{RoomID: 1, Date: "2025-08-23", TimeLabel: "6:00 PM", DurationHours: 1, Status: StatusPending},
	}

	// 5 PM for 2h would run into the 6 PM booking; 4 PM for 2h is clear.
	got, err := AvailableSlots(configured, "2025-08-23", 2, existing, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"4:00 PM"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAvailableSlots_SortsUnorderedConfig(t *testing.T) {
	configured := []string{"6:00 PM", "4:00 PM", "5:00 PM"}

	got, err := AvailableSlots(configured, "2025-08-23", 1, nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"4:00 PM", "5:00 PM", "6:00 PM"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAvailableSlots_EmptyConfigured(t *testing.T) {
	got, err := AvailableSlots(nil, "2025-08-23", 1, nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("empty configured list must yield empty result, got %v", got)
	}
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	configured := []string{"2:00 PM", "3:00 PM", "5:00 PM"}
	existing := []Booking{
		{RoomID: 1, Date: "2025-08-23", TimeLabel: "2:00 PM", DurationHours: 1, Status: StatusConfirmed},
	}

	first, err := AvailableSlots(configured, "2025-08-23", 1, existing, 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := AvailableSlots(configured, "2025-08-23", 1, existing, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs gave %v then %v", first, second)
	}
}

func TestAvailableSlots_InvalidConfiguredLabel(t *testing.T) {
	if _, err := AvailableSlots([]string{"5:00 PM", "bad"}, "2025-08-23", 1, nil, 1); !errors.Is(err, ErrInvalidTimeLabel) {
		t.Errorf("want ErrInvalidTimeLabel, got %v", err)
	}
}

func TestDayName(t *testing.T) {
	// 2025-08-23 is a Saturday in every timezone; the date is parsed as a
	// plain calendar day.
	day, err := DayName("2025-08-23")
	if err != nil {
		t.Fatal(err)
	}
	if day != "saturday" {
		t.Errorf("got %q, want saturday", day)
	}

	if _, err := DayName("23/08/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestConfiguredFor(t *testing.T) {
	avail := map[string][]string{
		"saturday": {"5:00 PM", "6:00 PM"},
	}
	flat := []string{"4:00 PM"}

	got, err := ConfiguredFor(avail, flat, "2025-08-23")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, avail["saturday"]) {
		t.Errorf("got %v, want per-day list", got)
	}

	// Sunday has no per-day entry: fall back to the legacy flat list.
	got, err = ConfiguredFor(avail, flat, "2025-08-24")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, flat) {
		t.Errorf("got %v, want flat fallback", got)
	}
}
