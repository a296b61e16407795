package booking

import (
	"fmt"
	"math/rand"
	"time"

	"ticketly/models"
	"ticketly/utils"
)

// GenerateBookingID builds the human-readable booking reference: a fixed
// prefix, a millisecond timestamp and a small random suffix. Uniqueness is
// enforced by the ledger's unique index, not by this generator.
func GenerateBookingID() string {
	return fmt.Sprintf("BK%d%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// GetUserBookings lists the caller's bookings, newest first.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	bookings, err := s.Bookings.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// GetBookingDetails fetches one booking by its reference, scoped to the
// caller. Someone else's booking reads the same as a missing one.
func (s *DefaultBookingService) GetBookingDetails(userID, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByBookingID(bookingID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("Booking not found")
	}
	return booking, nil
}
