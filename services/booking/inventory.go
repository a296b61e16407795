package booking

import (
	"context"
	"time"

	inventoryRepo "ticketly/database/repository/inventory"
)

// The six item types track inventory three different ways: explicit
// seat-code sets, booked counters, and (for cars) nothing at all. The engine
// commits through one of two capability interfaces and each item type
// supplies an adapter, so the commit/compensate logic is written once.

// SeatCodeInventory is a sub-unit whose seats are identified by code.
type SeatCodeInventory interface {
	Reserve(ctx context.Context, codes []string) error
	Release(ctx context.Context, codes []string) error
}

// CounterInventory is a sub-unit that only counts how many seats are taken.
type CounterInventory interface {
	Reserve(ctx context.Context, n int) error
	Release(ctx context.Context, n int) error
}

// showInventory adapts a movie show.
type showInventory struct {
	repo    inventoryRepo.MovieRepository
	movieID string
	showID  string
}

func (a showInventory) Reserve(ctx context.Context, codes []string) error {
	return a.repo.ReserveShowSeats(ctx, a.movieID, a.showID, codes)
}

func (a showInventory) Release(ctx context.Context, codes []string) error {
	return a.repo.ReleaseShowSeats(ctx, a.movieID, a.showID, codes)
}

// categoryInventory adapts a concert ticket category.
type categoryInventory struct {
	repo       inventoryRepo.ConcertRepository
	concertID  string
	category   string
	totalSeats int
}

func (a categoryInventory) Reserve(ctx context.Context, n int) error {
	return a.repo.ReserveCategorySeats(ctx, a.concertID, a.category, n, a.totalSeats-n)
}

func (a categoryInventory) Release(ctx context.Context, n int) error {
	return a.repo.ReleaseCategorySeats(ctx, a.concertID, a.category, n)
}

// busRouteInventory adapts a bus route.
type busRouteInventory struct {
	repo    inventoryRepo.BusRepository
	busID   string
	routeID string
}

func (a busRouteInventory) Reserve(ctx context.Context, codes []string) error {
	return a.repo.ReserveRouteSeats(ctx, a.busID, a.routeID, codes)
}

func (a busRouteInventory) Release(ctx context.Context, codes []string) error {
	return a.repo.ReleaseRouteSeats(ctx, a.busID, a.routeID, codes)
}

// journeyInventory adapts a train journey for one calendar date.
type journeyInventory struct {
	repo    inventoryRepo.TrainRepository
	trainID string
	date    time.Time
}

func (a journeyInventory) Reserve(ctx context.Context, codes []string) error {
	return a.repo.ReserveJourneySeats(ctx, a.trainID, a.date, codes)
}

func (a journeyInventory) Release(ctx context.Context, codes []string) error {
	return a.repo.ReleaseJourneySeats(ctx, a.trainID, a.date, codes)
}

// flightInventory adapts a flight route + class pair. The repository commits
// the seat-code append and the class counter decrement as one update.
type flightInventory struct {
	repo      inventoryRepo.FlightRepository
	flightID  string
	routeID   string
	className string
}

func (a flightInventory) Reserve(ctx context.Context, codes []string) error {
	return a.repo.ReserveFlightSeats(ctx, a.flightID, a.routeID, a.className, codes)
}

func (a flightInventory) Release(ctx context.Context, codes []string) error {
	return a.repo.ReleaseFlightSeats(ctx, a.flightID, a.routeID, a.className, codes)
}
