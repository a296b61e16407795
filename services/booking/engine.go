package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "ticketly/database/repository/booking"
	inventoryRepo "ticketly/database/repository/inventory"
	userRepo "ticketly/database/repository/user"
	"ticketly/models"
	"ticketly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the reservation engine. Every reservation follows
// the same protocol: read the item, report precise availability errors, then
// commit through a single conditional update whose filter re-asserts the
// availability guards. The conditional update is what makes two concurrent
// requests for the same seat resolve to exactly one winner.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Movies   inventoryRepo.MovieRepository
	Concerts inventoryRepo.ConcertRepository
	Buses    inventoryRepo.BusRepository
	Trains   inventoryRepo.TrainRepository
	Flights  inventoryRepo.FlightRepository
	Cars     inventoryRepo.CarRepository

	// Policy knobs, wired from configuration.
	TrainBaseFare        float64
	CarMinimumFare       float64
	RefundPercent        float64
	ReleaseSeatsOnCancel bool
}

var errMissingFields = utils.NewValidationError("Please provide all required fields")

// validateSeats rejects empty and internally duplicated seat requests.
// Duplicates would be collapsed by the set semantics of the booked list
// while still being charged, so they are refused outright.
func validateSeats(seats []string) error {
	if len(seats) == 0 {
		return errMissingFields
	}
	seen := make(map[string]struct{}, len(seats))
	for _, seat := range seats {
		if _, dup := seen[seat]; dup {
			return utils.NewValidationError(fmt.Sprintf("Seat %s is requested more than once", seat))
		}
		seen[seat] = struct{}{}
	}
	return nil
}

// unavailableSeats returns the requested codes already present in booked.
func unavailableSeats(requested, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, seat := range booked {
		taken[seat] = struct{}{}
	}
	var conflicts []string
	for _, seat := range requested {
		if _, ok := taken[seat]; ok {
			conflicts = append(conflicts, seat)
		}
	}
	return conflicts
}

// checkSeatAvailability runs the two independent availability checks: seat
// collision by set membership, then capacity by count. Both must pass.
func checkSeatAvailability(requested, booked []string, capacity int) error {
	if conflicts := unavailableSeats(requested, booked); len(conflicts) > 0 {
		return utils.NewConflictError(fmt.Sprintf("Seats %s are already booked", strings.Join(conflicts, ", ")))
	}
	if len(requested)+len(booked) > capacity {
		return utils.NewConflictError("Not enough seats available")
	}
	return nil
}

// commitSeats performs the atomic reservation. A guard failure here means a
// concurrent request won the seats between our read and our commit.
func commitSeats(ctx context.Context, inv SeatCodeInventory, seats []string) error {
	if err := inv.Reserve(ctx, seats); err != nil {
		if errors.Is(err, inventoryRepo.ErrUnavailable) {
			return utils.NewConflictError("Selected seats are no longer available")
		}
		return err
	}
	return nil
}

// finalize persists the booking and links it to the user. If the ledger
// insert fails the already-committed reservation is rolled back so no seats
// leak.
func (s *DefaultBookingService) finalize(ctx context.Context, booking *models.Booking, release func(context.Context) error) error {
	if err := s.Bookings.Insert(ctx, booking); err != nil {
		if release != nil {
			if rerr := release(ctx); rerr != nil {
				utils.GetLogger().Error("failed to release seats after booking insert failure",
					zap.String("bookingId", booking.BookingID), zap.Error(rerr))
			}
		}
		return err
	}
	if err := s.Users.AppendBooking(booking.UserID, booking.ID); err != nil {
		// The booking and the reservation are already durable; a missing
		// back-reference is recoverable and not worth failing the request.
		utils.GetLogger().Warn("failed to append booking to user",
			zap.String("userId", booking.UserID), zap.Error(err))
	}
	return nil
}

func newBooking(userID, bookingType, itemID string, seats []string, pricePerSeat float64) *models.Booking {
	return &models.Booking{
		ID:                 uuid.New().String(),
		BookingID:          GenerateBookingID(),
		UserID:             userID,
		BookingType:        bookingType,
		ItemID:             itemID,
		Seats:              seats,
		SelectedSeatsCount: len(seats),
		PricePerSeat:       pricePerSeat,
		TotalAmount:        pricePerSeat * float64(len(seats)),
		BookingDate:        time.Now(),
		Status:             models.BookingStatusConfirmed,
		PaymentStatus:      models.PaymentStatusPending,
	}
}

// BookMovie reserves seats on one show of a movie.
func (s *DefaultBookingService) BookMovie(ctx context.Context, userID string, req MovieBookingRequest) (*models.MovieBookingResponse, error) {
	if req.MovieID == "" || req.ShowID == "" {
		return nil, errMissingFields
	}
	if err := validateSeats(req.Seats); err != nil {
		return nil, err
	}

	movie, err := s.Movies.GetByID(req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, utils.NewNotFoundError("Movie not found")
	}

	var show *models.Show
	for i := range movie.Shows {
		if movie.Shows[i].ID == req.ShowID {
			show = &movie.Shows[i]
			break
		}
	}
	if show == nil {
		return nil, utils.NewNotFoundError("Show not found")
	}

	if err := checkSeatAvailability(req.Seats, show.BookedSeats, show.TotalSeats); err != nil {
		return nil, err
	}

	inv := showInventory{repo: s.Movies, movieID: movie.ID, showID: show.ID}
	if err := commitSeats(ctx, inv, req.Seats); err != nil {
		return nil, err
	}

	booking := newBooking(userID, models.BookingTypeMovie, movie.ID, req.Seats, show.Price)
	booking.SubUnitRef = show.ID
	booking.JourneyDate = time.Now()
	booking.DepartureLocation = show.Theater
	booking.TravelerDetails = req.TravelerDetails

	if err := s.finalize(ctx, booking, func(c context.Context) error { return inv.Release(c, req.Seats) }); err != nil {
		return nil, err
	}

	return &models.MovieBookingResponse{
		BookingID:   booking.BookingID,
		TotalAmount: booking.TotalAmount,
		Seats:       booking.Seats,
		MovieName:   movie.Name,
		Theater:     show.Theater,
		Time:        show.Time,
	}, nil
}

// BookConcert reserves a quantity of tickets in one category. The seat list
// is a set of generated placeholders; only its size matters, because concert
// inventory is a counter.
func (s *DefaultBookingService) BookConcert(ctx context.Context, userID string, req ConcertBookingRequest) (*models.ConcertBookingResponse, error) {
	if req.ConcertID == "" || req.Category == "" {
		return nil, errMissingFields
	}
	if err := validateSeats(req.Seats); err != nil {
		return nil, err
	}

	concert, err := s.Concerts.GetByID(req.ConcertID)
	if err != nil {
		return nil, err
	}
	if concert == nil {
		return nil, utils.NewNotFoundError("Concert not found")
	}

	var category *models.TicketCategory
	for i := range concert.TicketCategories {
		if concert.TicketCategories[i].Name == req.Category {
			category = &concert.TicketCategories[i]
			break
		}
	}
	if category == nil {
		return nil, utils.NewNotFoundError("Ticket category not found")
	}

	available := category.TotalSeats - category.BookedSeats
	if len(req.Seats) > available {
		return nil, utils.NewConflictError(fmt.Sprintf("Only %d seats available for %s", available, req.Category))
	}

	inv := categoryInventory{repo: s.Concerts, concertID: concert.ID, category: category.Name, totalSeats: category.TotalSeats}
	if err := inv.Reserve(ctx, len(req.Seats)); err != nil {
		if errors.Is(err, inventoryRepo.ErrUnavailable) {
			return nil, utils.NewConflictError(fmt.Sprintf("Only limited seats remain for %s, please retry", req.Category))
		}
		return nil, err
	}

	booking := newBooking(userID, models.BookingTypeConcert, concert.ID, req.Seats, category.Price)
	booking.CategoryRef = category.Name
	booking.JourneyDate = concert.Date
	booking.DepartureLocation = concert.Venue.Name
	booking.TravelerDetails = req.TravelerDetails

	release := func(c context.Context) error { return inv.Release(c, len(req.Seats)) }
	if err := s.finalize(ctx, booking, release); err != nil {
		return nil, err
	}

	return &models.ConcertBookingResponse{
		BookingID:   booking.BookingID,
		TotalAmount: booking.TotalAmount,
		Seats:       booking.Seats,
		ConcertName: concert.Name,
		Category:    category.Name,
		Venue:       concert.Venue.Name,
		Date:        concert.Date,
	}, nil
}

// BookBus reserves seats on one route of a bus. Capacity comes from the
// parent bus, not the route.
func (s *DefaultBookingService) BookBus(ctx context.Context, userID string, req BusBookingRequest) (*models.BusBookingResponse, error) {
	if req.BusID == "" || req.RouteID == "" {
		return nil, errMissingFields
	}
	if err := validateSeats(req.Seats); err != nil {
		return nil, err
	}

	bus, err := s.Buses.GetByID(req.BusID)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, utils.NewNotFoundError("Bus not found")
	}

	var route *models.BusRoute
	for i := range bus.Routes {
		if bus.Routes[i].ID == req.RouteID {
			route = &bus.Routes[i]
			break
		}
	}
	if route == nil {
		return nil, utils.NewNotFoundError("Route not found")
	}

	if err := checkSeatAvailability(req.Seats, route.BookedSeats, bus.TotalSeats); err != nil {
		return nil, err
	}

	inv := busRouteInventory{repo: s.Buses, busID: bus.BusID, routeID: route.ID}
	if err := commitSeats(ctx, inv, req.Seats); err != nil {
		return nil, err
	}

	booking := newBooking(userID, models.BookingTypeBus, bus.BusID, req.Seats, route.Fare)
	booking.SubUnitRef = route.ID
	booking.JourneyDate = route.Date
	booking.DepartureTime = route.DepartureTime
	booking.DepartureLocation = route.Source.Name
	booking.ArrivalLocation = route.Destination.Name
	booking.TravelerDetails = req.TravelerDetails

	if err := s.finalize(ctx, booking, func(c context.Context) error { return inv.Release(c, req.Seats) }); err != nil {
		return nil, err
	}

	return &models.BusBookingResponse{
		BookingID:     booking.BookingID,
		TotalAmount:   booking.TotalAmount,
		Seats:         booking.Seats,
		BusName:       bus.BusName,
		From:          route.Source.Name,
		To:            route.Destination.Name,
		DepartureTime: route.DepartureTime,
	}, nil
}

// parseJourneyDate accepts a calendar date or a full timestamp.
func parseJourneyDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, utils.NewValidationError("Invalid journey date")
}

// BookTrain reserves seats on the journey for the requested date, creating
// the journey on first booking. The fare is a flat per-seat base fare rather
// than one derived from coach fare tables.
func (s *DefaultBookingService) BookTrain(ctx context.Context, userID string, req TrainBookingRequest) (*models.TrainBookingResponse, error) {
	if req.TrainID == "" || req.JourneyDate == "" {
		return nil, errMissingFields
	}
	if err := validateSeats(req.Seats); err != nil {
		return nil, err
	}
	journeyDate, err := parseJourneyDate(req.JourneyDate)
	if err != nil {
		return nil, err
	}
	journeyDate = inventoryRepo.NormalizeJourneyDate(journeyDate)

	train, err := s.Trains.GetByID(req.TrainID)
	if err != nil {
		return nil, err
	}
	if train == nil {
		return nil, utils.NewNotFoundError("Train not found")
	}

	capacity := train.SeatCapacity()
	booked := []string{}
	for i := range train.Journeys {
		if inventoryRepo.NormalizeJourneyDate(train.Journeys[i].Date).Equal(journeyDate) {
			booked = train.Journeys[i].BookedSeats
			capacity = train.Journeys[i].TotalAvailableSeats
			break
		}
	}

	if err := checkSeatAvailability(req.Seats, booked, capacity); err != nil {
		return nil, err
	}

	// Get-or-create the journey, then reserve against it. The conditional
	// push means concurrent first bookings for the same date converge on a
	// single journey document.
	if err := s.Trains.EnsureJourney(ctx, train.ID, journeyDate, train.SeatCapacity()); err != nil {
		return nil, err
	}

	inv := journeyInventory{repo: s.Trains, trainID: train.ID, date: journeyDate}
	if err := commitSeats(ctx, inv, req.Seats); err != nil {
		return nil, err
	}

	booking := newBooking(userID, models.BookingTypeTrain, train.ID, req.Seats, s.TrainBaseFare)
	booking.JourneyDate = journeyDate
	if len(train.Routes) > 0 {
		booking.DepartureLocation = train.Routes[0].Source.Name
		booking.ArrivalLocation = train.Routes[len(train.Routes)-1].Destination.Name
	}
	booking.TravelerDetails = req.TravelerDetails

	if err := s.finalize(ctx, booking, func(c context.Context) error { return inv.Release(c, req.Seats) }); err != nil {
		return nil, err
	}

	return &models.TrainBookingResponse{
		BookingID:   booking.BookingID,
		TotalAmount: booking.TotalAmount,
		Seats:       booking.Seats,
		TrainNumber: train.TrainNumber,
		TrainName:   train.TrainName,
		JourneyDate: journeyDate,
	}, nil
}

// BookFlight reserves seats on a route in a given cabin class. Collision is
// checked against the route's seat-code set, capacity against the class
// counter; the commit updates both in one conditional write.
func (s *DefaultBookingService) BookFlight(ctx context.Context, userID string, req FlightBookingRequest) (*models.FlightBookingResponse, error) {
	if req.FlightID == "" || req.RouteID == "" || req.ClassType == "" {
		return nil, errMissingFields
	}
	if err := validateSeats(req.Seats); err != nil {
		return nil, err
	}

	flight, err := s.Flights.GetByID(req.FlightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, utils.NewNotFoundError("Flight not found")
	}

	var route *models.FlightRoute
	for i := range flight.Routes {
		if flight.Routes[i].ID == req.RouteID {
			route = &flight.Routes[i]
			break
		}
	}
	if route == nil {
		return nil, utils.NewNotFoundError("Route not found")
	}

	var class *models.FlightClass
	for i := range flight.Classes {
		if flight.Classes[i].ClassName == req.ClassType {
			class = &flight.Classes[i]
			break
		}
	}
	if class == nil {
		return nil, utils.NewNotFoundError("Class not found")
	}

	if conflicts := unavailableSeats(req.Seats, route.BookedSeats); len(conflicts) > 0 {
		return nil, utils.NewConflictError(fmt.Sprintf("Seats %s are already booked", strings.Join(conflicts, ", ")))
	}
	if len(req.Seats) > class.AvailableSeats {
		return nil, utils.NewConflictError(fmt.Sprintf("Only %d seats available in %s", class.AvailableSeats, req.ClassType))
	}

	inv := flightInventory{repo: s.Flights, flightID: flight.ID, routeID: route.ID, className: class.ClassName}
	if err := commitSeats(ctx, inv, req.Seats); err != nil {
		return nil, err
	}

	booking := newBooking(userID, models.BookingTypeFlight, flight.ID, req.Seats, class.Price)
	booking.SubUnitRef = route.ID
	booking.CategoryRef = class.ClassName
	booking.JourneyDate = route.Date
	booking.DepartureTime = route.DepartureTime
	booking.DepartureLocation = route.Source.Name
	booking.ArrivalLocation = route.Destination.Name
	booking.TravelerDetails = req.TravelerDetails

	if err := s.finalize(ctx, booking, func(c context.Context) error { return inv.Release(c, req.Seats) }); err != nil {
		return nil, err
	}

	return &models.FlightBookingResponse{
		BookingID:     booking.BookingID,
		TotalAmount:   booking.TotalAmount,
		Seats:         booking.Seats,
		FlightNumber:  flight.FlightNumber,
		From:          route.Source.Name,
		To:            route.Destination.Name,
		ClassType:     class.ClassName,
		DepartureTime: route.DepartureTime,
	}, nil
}

// BookCar books a car for a time window at the flat minimum fare. There is
// no seat inventory and no overlap check across windows; the only capacity
// rule is the passenger count.
func (s *DefaultBookingService) BookCar(ctx context.Context, userID string, req CarBookingRequest) (*models.CarBookingResponse, error) {
	if req.CarID == "" || req.PickupLocation == "" || req.DropLocation == "" ||
		req.PickupTime == "" || req.DropTime == "" || req.PassengerCount == 0 {
		return nil, errMissingFields
	}

	car, err := s.Cars.GetByID(req.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, utils.NewNotFoundError("Car not found")
	}

	if req.PassengerCount > car.SeatingCapacity {
		return nil, utils.NewConflictError(fmt.Sprintf("This car can accommodate maximum %d passengers", car.SeatingCapacity))
	}

	fare := car.MinimumFare
	if fare == 0 {
		fare = s.CarMinimumFare
	}

	booking := newBooking(userID, models.BookingTypeCar, car.ID, nil, fare)
	booking.SelectedSeatsCount = req.PassengerCount
	booking.TotalAmount = fare
	if pickup, perr := time.Parse(time.RFC3339, req.PickupTime); perr == nil {
		booking.JourneyDate = pickup
	} else {
		booking.JourneyDate = time.Now()
	}
	booking.DepartureTime = req.PickupTime
	booking.DepartureLocation = req.PickupLocation
	booking.ArrivalLocation = req.DropLocation

	if err := s.finalize(ctx, booking, nil); err != nil {
		return nil, err
	}
	if err := s.Cars.AppendBooking(ctx, car.ID, booking.ID); err != nil {
		utils.GetLogger().Warn("failed to append booking to car", zap.String("carId", car.ID), zap.Error(err))
	}

	return &models.CarBookingResponse{
		BookingID:      booking.BookingID,
		TotalAmount:    booking.TotalAmount,
		CarModel:       car.CarModel,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		PickupTime:     req.PickupTime,
		DropTime:       req.DropTime,
		PassengerCount: req.PassengerCount,
	}, nil
}
