package booking

import (
	"context"
	"testing"
)

func TestCancelBookingRefund(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	resp, err := env.svc.BookMovie(ctx, "u1", MovieBookingRequest{
		MovieID: "mv1", ShowID: "sh1", Seats: []string{"A1", "A2", "A3", "A4"},
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	// 4 seats x 250 = 1000; 80% refund.
	refund, err := env.svc.CancelBooking(ctx, "u1", resp.BookingID, "change of plans")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if refund != 800 {
		t.Errorf("expected refund 800, got %v", refund)
	}

	booking, err := env.svc.GetBookingDetails("u1", resp.BookingID)
	if err != nil {
		t.Fatalf("fetch after cancel failed: %v", err)
	}
	if booking.Status != "Cancelled" {
		t.Errorf("expected status Cancelled, got %q", booking.Status)
	}
	if booking.RefundAmount != 800 {
		t.Errorf("expected stored refund 800, got %v", booking.RefundAmount)
	}
	if booking.CancellationReason != "change of plans" {
		t.Errorf("unexpected reason %q", booking.CancellationReason)
	}
}

func TestCancelBookingTwice(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	resp, err := env.svc.BookMovie(ctx, "u1", MovieBookingRequest{
		MovieID: "mv1", ShowID: "sh1", Seats: []string{"A1"},
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if _, err := env.svc.CancelBooking(ctx, "u1", resp.BookingID, ""); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	_, err = env.svc.CancelBooking(ctx, "u1", resp.BookingID, "")
	assertAPIError(t, err, "Booking is already cancelled")
}

func TestCancelBookingNotOwner(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	resp, err := env.svc.BookMovie(ctx, "u1", MovieBookingRequest{
		MovieID: "mv1", ShowID: "sh1", Seats: []string{"A1"},
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	_, err = env.svc.CancelBooking(ctx, "someone-else", resp.BookingID, "")
	assertAPIError(t, err, "Booking not found")
}

func TestCancelKeepsSeatsByDefault(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	resp, err := env.svc.BookMovie(ctx, "u1", MovieBookingRequest{
		MovieID: "mv1", ShowID: "sh1", Seats: []string{"A1"},
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if _, err := env.svc.CancelBooking(ctx, "u1", resp.BookingID, ""); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	movie, _ := env.movies.GetByID("mv1")
	if got := len(movie.Shows[0].BookedSeats); got != 1 {
		t.Errorf("expected seat still blocked with release disabled, got %d booked", got)
	}
}

func TestCancelReleasesSeatsWhenEnabled(t *testing.T) {
	env := newTestEnv()
	env.svc.ReleaseSeatsOnCancel = true
	ctx := context.Background()

	resp, err := env.svc.BookMovie(ctx, "u1", MovieBookingRequest{
		MovieID: "mv1", ShowID: "sh1", Seats: []string{"A1", "A2"},
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if _, err := env.svc.CancelBooking(ctx, "u1", resp.BookingID, ""); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	movie, _ := env.movies.GetByID("mv1")
	if got := len(movie.Shows[0].BookedSeats); got != 0 {
		t.Errorf("expected seats released, got %d still booked", got)
	}
}

func TestCancelReleasesConcertCounter(t *testing.T) {
	env := newTestEnv()
	env.svc.ReleaseSeatsOnCancel = true
	ctx := context.Background()

	resp, err := env.svc.BookConcert(ctx, "u1", ConcertBookingRequest{
		ConcertID: "cn1", Category: "Silver", Seats: []string{"S1", "S2"},
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if _, err := env.svc.CancelBooking(ctx, "u1", resp.BookingID, ""); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	concert, _ := env.concerts.GetByID("cn1")
	if got := concert.TicketCategories[1].BookedSeats; got != 0 {
		t.Errorf("expected Silver counter back to 0, got %d", got)
	}
}
