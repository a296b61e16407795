package bookingRepo

import (
	"context"
	"time"

	"ticketly/models"
)

// BookingRepository defines data access for the booking ledger. Bookings are
// never deleted; every mutation is a status transition.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	// GetByBookingID fetches by the human-readable reference, scoped to the
	// owning user. Returns (nil, nil) when absent or owned by someone else.
	GetByBookingID(bookingID, userID string) (*models.Booking, error)
	// GetByRef accepts either the document id or the human-readable
	// reference, scoped to the owning user.
	GetByRef(ref, userID string) (*models.Booking, error)
	// ListByUser returns the user's bookings, newest first.
	ListByUser(userID string) ([]models.Booking, error)
	// Cancel transitions a non-cancelled booking to Cancelled. Returns false
	// when the booking was already cancelled.
	Cancel(bookingID, userID, reason string, refundAmount float64) (bool, error)
	// SetPaymentCompleted links the payment record and marks the booking paid.
	SetPaymentCompleted(bookingDocID, paymentID string) error
	// FindDueReminders returns confirmed, not-yet-reminded bookings whose
	// journey date falls inside [from, to].
	FindDueReminders(from, to time.Time) ([]models.Booking, error)
	// MarkReminderSent flips the reminder flag. Returns false when another
	// worker already claimed the booking.
	MarkReminderSent(bookingDocID string) (bool, error)
}
