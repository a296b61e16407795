package booking

import (
	"context"
	"math"

	inventoryRepo "ticketly/database/repository/inventory"
	"ticketly/models"
	"ticketly/utils"

	"go.uber.org/zap"
)

// CancelBooking cancels a booking owned by userID and returns the refund
// amount. The status flip is a conditional update so repeated cancel
// requests fail cleanly instead of issuing a second refund.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, userID, bookingID, reason string) (float64, error) {
	booking, err := s.Bookings.GetByRef(bookingID, userID)
	if err != nil {
		return 0, err
	}
	if booking == nil {
		// Someone else's booking reads the same as a missing one.
		return 0, utils.NewNotFoundError("Booking not found")
	}
	if booking.Status == models.BookingStatusCancelled {
		return 0, utils.NewConflictError("Booking is already cancelled")
	}

	refund := roundMoney(booking.TotalAmount * s.RefundPercent)

	cancelled, err := s.Bookings.Cancel(booking.BookingID, userID, reason, refund)
	if err != nil {
		return 0, err
	}
	if !cancelled {
		// Lost a race against another cancel request.
		return 0, utils.NewConflictError("Booking is already cancelled")
	}

	if s.ReleaseSeatsOnCancel {
		if err := s.releaseInventory(ctx, booking); err != nil {
			// The cancellation is already durable. Seats staying blocked is
			// preferable to a booking stuck half-cancelled.
			utils.GetLogger().Error("failed to release inventory for cancelled booking",
				zap.String("bookingId", booking.BookingID),
				zap.String("bookingType", booking.BookingType),
				zap.Error(err))
		}
	}

	return refund, nil
}

// releaseInventory returns the booking's seats to the pool they were drawn
// from. Release updates are floor-guarded in the repositories, so releasing
// already-free codes cannot corrupt the counters.
func (s *DefaultBookingService) releaseInventory(ctx context.Context, b *models.Booking) error {
	switch b.BookingType {
	case models.BookingTypeMovie:
		return s.Movies.ReleaseShowSeats(ctx, b.ItemID, b.SubUnitRef, b.Seats)
	case models.BookingTypeConcert:
		return s.Concerts.ReleaseCategorySeats(ctx, b.ItemID, b.CategoryRef, b.SelectedSeatsCount)
	case models.BookingTypeBus:
		return s.Buses.ReleaseRouteSeats(ctx, b.ItemID, b.SubUnitRef, b.Seats)
	case models.BookingTypeTrain:
		return s.Trains.ReleaseJourneySeats(ctx, b.ItemID, inventoryRepo.NormalizeJourneyDate(b.JourneyDate), b.Seats)
	case models.BookingTypeFlight:
		return s.Flights.ReleaseFlightSeats(ctx, b.ItemID, b.SubUnitRef, b.CategoryRef, b.Seats)
	}
	// Cars hold no seat inventory.
	return nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
