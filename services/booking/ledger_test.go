package booking

import (
	"context"
	"regexp"
	"testing"
)

func TestGenerateBookingIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^BK\d{13,}$`)
	for i := 0; i < 10; i++ {
		id := GenerateBookingID()
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected booking id format: %q", id)
		}
	}
}

func TestGetUserBookingsNewestFirst(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	first, err := env.svc.BookMovie(ctx, "u1", MovieBookingRequest{
		MovieID: "mv1", ShowID: "sh1", Seats: []string{"A1"},
	})
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	second, err := env.svc.BookBus(ctx, "u1", BusBookingRequest{
		BusID: "bs1", RouteID: "rt1", Seats: []string{"1"},
	})
	if err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	bookings, err := env.svc.GetUserBookings("u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].BookingID != second.BookingID {
		t.Errorf("expected newest booking first, got %q then %q", bookings[0].BookingID, bookings[1].BookingID)
	}
	if bookings[1].BookingID != first.BookingID {
		t.Errorf("expected oldest booking last, got %q", bookings[1].BookingID)
	}
}

func TestGetUserBookingsEmpty(t *testing.T) {
	env := newTestEnv()
	bookings, err := env.svc.GetUserBookings("u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if bookings == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(bookings) != 0 {
		t.Fatalf("expected no bookings, got %d", len(bookings))
	}
}

func TestGetBookingDetailsScopedToOwner(t *testing.T) {
	env := newTestEnv()
	resp, err := env.svc.BookMovie(context.Background(), "u1", MovieBookingRequest{
		MovieID: "mv1", ShowID: "sh1", Seats: []string{"A1"},
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	if _, err := env.svc.GetBookingDetails("u1", resp.BookingID); err != nil {
		t.Errorf("owner fetch failed: %v", err)
	}

	_, err = env.svc.GetBookingDetails("intruder", resp.BookingID)
	assertAPIError(t, err, "Booking not found")
}
