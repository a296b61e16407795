package booking

import (
	"context"

	"ticketly/models"
)

// Reservation requests, one per booking type. All share the same shape: an
// item id, a sub-unit selector, the requested seats and traveler details.

type MovieBookingRequest struct {
	MovieID         string                  `json:"movieId"`
	ShowID          string                  `json:"showId"`
	Seats           []string                `json:"seats"`
	TravelerDetails []models.TravelerDetail `json:"travelerDetails"`
}

type ConcertBookingRequest struct {
	ConcertID       string                  `json:"concertId"`
	Category        string                  `json:"category"`
	Seats           []string                `json:"seats"`
	TravelerDetails []models.TravelerDetail `json:"travelerDetails"`
}

type BusBookingRequest struct {
	BusID           string                  `json:"busId"`
	RouteID         string                  `json:"routeId"`
	Seats           []string                `json:"seats"`
	TravelerDetails []models.TravelerDetail `json:"travelerDetails"`
}

type TrainBookingRequest struct {
	TrainID         string                  `json:"trainId"`
	JourneyDate     string                  `json:"journeyDate"` // YYYY-MM-DD or RFC 3339
	Seats           []string                `json:"seats"`
	TravelerDetails []models.TravelerDetail `json:"travelerDetails"`
}

type FlightBookingRequest struct {
	FlightID        string                  `json:"flightId"`
	RouteID         string                  `json:"routeId"`
	ClassType       string                  `json:"classType"`
	Seats           []string                `json:"seats"`
	TravelerDetails []models.TravelerDetail `json:"travelerDetails"`
}

type CarBookingRequest struct {
	CarID          string `json:"carId"`
	PickupLocation string `json:"pickupLocation"`
	DropLocation   string `json:"dropLocation"`
	PickupTime     string `json:"pickupTime"`
	DropTime       string `json:"dropTime"`
	PassengerCount int    `json:"passengerCount"`
}

// BookingService is the reservation engine plus the ledger's query and
// cancellation surface.
type BookingService interface {
	BookMovie(ctx context.Context, userID string, req MovieBookingRequest) (*models.MovieBookingResponse, error)
	BookConcert(ctx context.Context, userID string, req ConcertBookingRequest) (*models.ConcertBookingResponse, error)
	BookBus(ctx context.Context, userID string, req BusBookingRequest) (*models.BusBookingResponse, error)
	BookTrain(ctx context.Context, userID string, req TrainBookingRequest) (*models.TrainBookingResponse, error)
	BookFlight(ctx context.Context, userID string, req FlightBookingRequest) (*models.FlightBookingResponse, error)
	BookCar(ctx context.Context, userID string, req CarBookingRequest) (*models.CarBookingResponse, error)

	GetUserBookings(userID string) ([]models.Booking, error)
	GetBookingDetails(userID, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID, reason string) (float64, error)
}
