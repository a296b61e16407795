package inventoryRepo

import (
	"context"
	"errors"
	"time"

	"ticketly/models"
)

// ErrUnavailable is returned when a conditional reservation update matched no
// document: either a requested seat was taken or capacity ran out between the
// availability read and the commit. Callers re-read to report the precise
// reason.
var ErrUnavailable = errors.New("inventory unavailable")

// MovieRepository manages the movies collection and its show inventories.
type MovieRepository interface {
	Create(movie *models.Movie) error
	GetByID(id string) (*models.Movie, error)
	List(activeOnly bool) ([]models.Movie, error)
	// ReserveShowSeats atomically appends the seat codes to the show's booked
	// set, guarded on non-membership and on totalSeats. ErrUnavailable when
	// the guard fails.
	ReserveShowSeats(ctx context.Context, movieID, showID string, seats []string) error
	ReleaseShowSeats(ctx context.Context, movieID, showID string, seats []string) error
}

// ConcertRepository manages the concerts collection. Concert inventory is a
// per-category counter, not a seat-code set.
type ConcertRepository interface {
	Create(concert *models.Concert) error
	GetByID(id string) (*models.Concert, error)
	List(activeOnly bool) ([]models.Concert, error)
	// ReserveCategorySeats increments the category counter by count, guarded
	// on the counter not exceeding maxBooked (totalSeats - count).
	ReserveCategorySeats(ctx context.Context, concertID, category string, count, maxBooked int) error
	ReleaseCategorySeats(ctx context.Context, concertID, category string, count int) error
}

// BusRepository manages the buses collection. Seat codes are tracked per
// route; capacity is the parent bus's totalSeats.
type BusRepository interface {
	Create(bus *models.Bus) error
	GetByID(id string) (*models.Bus, error)
	List(activeOnly bool, sourceCity, destinationCity string) ([]models.Bus, error)
	ReserveRouteSeats(ctx context.Context, busID, routeID string, seats []string) error
	ReleaseRouteSeats(ctx context.Context, busID, routeID string, seats []string) error
}

// TrainRepository manages the trains collection and its per-date journeys.
type TrainRepository interface {
	Create(train *models.Train) error
	GetByID(id string) (*models.Train, error)
	List(activeOnly bool) ([]models.Train, error)
	// EnsureJourney appends a fresh journey for the date unless one already
	// exists. The push is conditional on date absence so two concurrent
	// first bookings cannot create duplicate journeys.
	EnsureJourney(ctx context.Context, trainID string, date time.Time, capacity int) error
	ReserveJourneySeats(ctx context.Context, trainID string, date time.Time, seats []string) error
	ReleaseJourneySeats(ctx context.Context, trainID string, date time.Time, seats []string) error
}

// FlightRepository manages the flights collection. A reservation touches two
// sub-units at once: the route's seat-code set and the class's availability
// counter.
type FlightRepository interface {
	Create(flight *models.Flight) error
	GetByID(id string) (*models.Flight, error)
	List(activeOnly bool) ([]models.Flight, error)
	ReserveFlightSeats(ctx context.Context, flightID, routeID, className string, seats []string) error
	ReleaseFlightSeats(ctx context.Context, flightID, routeID, className string, seats []string) error
}

// CarRepository manages the cars collection. Cars carry no seat inventory.
type CarRepository interface {
	Create(car *models.Car) error
	GetByID(id string) (*models.Car, error)
	List(activeOnly bool) ([]models.Car, error)
	ListNearby(longitude, latitude, maxDistanceMeters float64) ([]models.Car, error)
	AppendBooking(ctx context.Context, carID, bookingDocID string) error
}

// NormalizeJourneyDate truncates a timestamp to its UTC calendar date, the
// granularity train journeys are keyed on.
func NormalizeJourneyDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
