package booking

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	inventoryRepo "ticketly/database/repository/inventory"
	"ticketly/models"
)

// In-memory repositories backing the engine tests. Reserve methods replicate
// the conditional-update semantics of the Mongo repositories: re-check the
// guards under a mutex and fail with ErrUnavailable when they no longer
// hold.

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*models.Booking
	failNext bool
}

func (r *fakeBookingRepo) Insert(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return errors.New("insert failed")
	}
	now := time.Now().Add(time.Duration(len(r.bookings)) * time.Millisecond)
	b.CreatedAt = now
	b.UpdatedAt = now
	clone := *b
	r.bookings = append(r.bookings, &clone)
	return nil
}

func (r *fakeBookingRepo) GetByBookingID(bookingID, userID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.BookingID == bookingID && b.UserID == userID {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByRef(ref, userID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if (b.ID == ref || b.BookingID == ref) && b.UserID == userID {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) Cancel(bookingID, userID, reason string, refundAmount float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.BookingID == bookingID && b.UserID == userID {
			if b.Status == models.BookingStatusCancelled {
				return false, nil
			}
			now := time.Now()
			b.Status = models.BookingStatusCancelled
			b.CancellationReason = reason
			b.CancellationDate = &now
			b.RefundAmount = refundAmount
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) SetPaymentCompleted(bookingDocID, paymentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == bookingDocID {
			b.PaymentID = paymentID
			b.PaymentStatus = models.PaymentStatusCompleted
			b.Status = models.BookingStatusConfirmed
			return nil
		}
	}
	return errors.New("booking not found")
}

func (r *fakeBookingRepo) FindDueReminders(from, to time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.BookingStatusConfirmed && !b.ReminderSent &&
			!b.JourneyDate.Before(from) && !b.JourneyDate.After(to) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) MarkReminderSent(bookingDocID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == bookingDocID {
			if b.ReminderSent {
				return false, nil
			}
			now := time.Now()
			b.ReminderSent = true
			b.ReminderSentAt = &now
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) MarkEmailVerified(email string) error { return nil }

func (r *fakeUserRepo) UpdatePassword(email, hash string) error { return nil }

func (r *fakeUserRepo) AppendBooking(userID, bookingDocID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		u.Bookings = append(u.Bookings, bookingDocID)
	}
	return nil
}

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[string]*models.Movie
}

func newFakeMovieRepo(movies ...*models.Movie) *fakeMovieRepo {
	r := &fakeMovieRepo{movies: make(map[string]*models.Movie)}
	for _, m := range movies {
		r.movies[m.ID] = m
	}
	return r
}

func (r *fakeMovieRepo) Create(m *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movies[m.ID] = m
	return nil
}

func (r *fakeMovieRepo) GetByID(id string) (*models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	clone := *m
	clone.Shows = append([]models.Show(nil), m.Shows...)
	return &clone, nil
}

func (r *fakeMovieRepo) List(activeOnly bool) ([]models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Movie
	for _, m := range r.movies {
		if !activeOnly || m.IsActive {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMovieRepo) ReserveShowSeats(_ context.Context, movieID, showID string, seats []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movies[movieID]
	if !ok {
		return inventoryRepo.ErrUnavailable
	}
	for i := range m.Shows {
		if m.Shows[i].ID != showID {
			continue
		}
		show := &m.Shows[i]
		if anyTaken(seats, show.BookedSeats) || len(show.BookedSeats)+len(seats) > show.TotalSeats {
			return inventoryRepo.ErrUnavailable
		}
		show.BookedSeats = append(show.BookedSeats, seats...)
		return nil
	}
	return inventoryRepo.ErrUnavailable
}

func (r *fakeMovieRepo) ReleaseShowSeats(_ context.Context, movieID, showID string, seats []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movies[movieID]
	if !ok {
		return nil
	}
	for i := range m.Shows {
		if m.Shows[i].ID == showID {
			m.Shows[i].BookedSeats = removeAll(m.Shows[i].BookedSeats, seats)
		}
	}
	return nil
}

type fakeConcertRepo struct {
	mu       sync.Mutex
	concerts map[string]*models.Concert
}

func newFakeConcertRepo(concerts ...*models.Concert) *fakeConcertRepo {
	r := &fakeConcertRepo{concerts: make(map[string]*models.Concert)}
	for _, c := range concerts {
		r.concerts[c.ID] = c
	}
	return r
}

func (r *fakeConcertRepo) Create(c *models.Concert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.concerts[c.ID] = c
	return nil
}

func (r *fakeConcertRepo) GetByID(id string) (*models.Concert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.concerts[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	clone.TicketCategories = append([]models.TicketCategory(nil), c.TicketCategories...)
	return &clone, nil
}

func (r *fakeConcertRepo) List(activeOnly bool) ([]models.Concert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Concert
	for _, c := range r.concerts {
		if !activeOnly || c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeConcertRepo) ReserveCategorySeats(_ context.Context, concertID, category string, count, maxBooked int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.concerts[concertID]
	if !ok {
		return inventoryRepo.ErrUnavailable
	}
	for i := range c.TicketCategories {
		cat := &c.TicketCategories[i]
		if cat.Name != category {
			continue
		}
		if cat.BookedSeats > maxBooked {
			return inventoryRepo.ErrUnavailable
		}
		cat.BookedSeats += count
		return nil
	}
	return inventoryRepo.ErrUnavailable
}

func (r *fakeConcertRepo) ReleaseCategorySeats(_ context.Context, concertID, category string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.concerts[concertID]
	if !ok {
		return nil
	}
	for i := range c.TicketCategories {
		cat := &c.TicketCategories[i]
		if cat.Name == category {
			cat.BookedSeats -= count
			if cat.BookedSeats < 0 {
				cat.BookedSeats = 0
			}
		}
	}
	return nil
}

type fakeBusRepo struct {
	mu    sync.Mutex
	buses map[string]*models.Bus
}

func newFakeBusRepo(buses ...*models.Bus) *fakeBusRepo {
	r := &fakeBusRepo{buses: make(map[string]*models.Bus)}
	for _, b := range buses {
		r.buses[b.BusID] = b
	}
	return r
}

func (r *fakeBusRepo) Create(b *models.Bus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buses[b.BusID] = b
	return nil
}

func (r *fakeBusRepo) GetByID(id string) (*models.Bus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buses[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	clone.Routes = append([]models.BusRoute(nil), b.Routes...)
	return &clone, nil
}

func (r *fakeBusRepo) List(activeOnly bool, sourceCity, destinationCity string) ([]models.Bus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Bus
	for _, b := range r.buses {
		if !activeOnly || b.IsActive {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBusRepo) ReserveRouteSeats(_ context.Context, busID, routeID string, seats []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buses[busID]
	if !ok {
		return inventoryRepo.ErrUnavailable
	}
	for i := range b.Routes {
		if b.Routes[i].ID != routeID {
			continue
		}
		route := &b.Routes[i]
		if anyTaken(seats, route.BookedSeats) || len(route.BookedSeats)+len(seats) > b.TotalSeats {
			return inventoryRepo.ErrUnavailable
		}
		route.BookedSeats = append(route.BookedSeats, seats...)
		return nil
	}
	return inventoryRepo.ErrUnavailable
}

func (r *fakeBusRepo) ReleaseRouteSeats(_ context.Context, busID, routeID string, seats []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buses[busID]
	if !ok {
		return nil
	}
	for i := range b.Routes {
		if b.Routes[i].ID == routeID {
			b.Routes[i].BookedSeats = removeAll(b.Routes[i].BookedSeats, seats)
		}
	}
	return nil
}

type fakeTrainRepo struct {
	mu     sync.Mutex
	trains map[string]*models.Train
}

func newFakeTrainRepo(trains ...*models.Train) *fakeTrainRepo {
	r := &fakeTrainRepo{trains: make(map[string]*models.Train)}
	for _, t := range trains {
		r.trains[t.ID] = t
	}
	return r
}

func (r *fakeTrainRepo) Create(t *models.Train) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trains[t.ID] = t
	return nil
}

func (r *fakeTrainRepo) GetByID(id string) (*models.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trains[id]
	if !ok {
		return nil, nil
	}
	clone := *t
	clone.Journeys = append([]models.Journey(nil), t.Journeys...)
	return &clone, nil
}

func (r *fakeTrainRepo) List(activeOnly bool) ([]models.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Train
	for _, t := range r.trains {
		if !activeOnly || t.IsActive {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTrainRepo) EnsureJourney(_ context.Context, trainID string, date time.Time, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trains[trainID]
	if !ok {
		return errors.New("train not found")
	}
	for i := range t.Journeys {
		if t.Journeys[i].Date.Equal(date) {
			return nil
		}
	}
	t.Journeys = append(t.Journeys, models.Journey{
		Date:                date,
		TotalAvailableSeats: capacity,
		BookedSeats:         []string{},
		CreatedAt:           time.Now(),
	})
	return nil
}

func (r *fakeTrainRepo) ReserveJourneySeats(_ context.Context, trainID string, date time.Time, seats []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trains[trainID]
	if !ok {
		return inventoryRepo.ErrUnavailable
	}
	for i := range t.Journeys {
		if !t.Journeys[i].Date.Equal(date) {
			continue
		}
		j := &t.Journeys[i]
		if anyTaken(seats, j.BookedSeats) || len(j.BookedSeats)+len(seats) > j.TotalAvailableSeats {
			return inventoryRepo.ErrUnavailable
		}
		j.BookedSeats = append(j.BookedSeats, seats...)
		return nil
	}
	return inventoryRepo.ErrUnavailable
}

func (r *fakeTrainRepo) ReleaseJourneySeats(_ context.Context, trainID string, date time.Time, seats []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trains[trainID]
	if !ok {
		return nil
	}
	for i := range t.Journeys {
		if t.Journeys[i].Date.Equal(date) {
			t.Journeys[i].BookedSeats = removeAll(t.Journeys[i].BookedSeats, seats)
		}
	}
	return nil
}

type fakeFlightRepo struct {
	mu      sync.Mutex
	flights map[string]*models.Flight
}

func newFakeFlightRepo(flights ...*models.Flight) *fakeFlightRepo {
	r := &fakeFlightRepo{flights: make(map[string]*models.Flight)}
	for _, f := range flights {
		r.flights[f.ID] = f
	}
	return r
}

func (r *fakeFlightRepo) Create(f *models.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flights[f.ID] = f
	return nil
}

func (r *fakeFlightRepo) GetByID(id string) (*models.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.flights[id]
	if !ok {
		return nil, nil
	}
	clone := *f
	clone.Routes = append([]models.FlightRoute(nil), f.Routes...)
	clone.Classes = append([]models.FlightClass(nil), f.Classes...)
	return &clone, nil
}

func (r *fakeFlightRepo) List(activeOnly bool) ([]models.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Flight
	for _, f := range r.flights {
		if !activeOnly || f.IsActive {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFlightRepo) ReserveFlightSeats(_ context.Context, flightID, routeID, className string, seats []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.flights[flightID]
	if !ok {
		return inventoryRepo.ErrUnavailable
	}
	var route *models.FlightRoute
	for i := range f.Routes {
		if f.Routes[i].ID == routeID {
			route = &f.Routes[i]
		}
	}
	var class *models.FlightClass
	for i := range f.Classes {
		if f.Classes[i].ClassName == className {
			class = &f.Classes[i]
		}
	}
	if route == nil || class == nil {
		return inventoryRepo.ErrUnavailable
	}
	if anyTaken(seats, route.BookedSeats) || class.AvailableSeats < len(seats) {
		return inventoryRepo.ErrUnavailable
	}
	route.BookedSeats = append(route.BookedSeats, seats...)
	class.AvailableSeats -= len(seats)
	return nil
}

func (r *fakeFlightRepo) ReleaseFlightSeats(_ context.Context, flightID, routeID, className string, seats []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.flights[flightID]
	if !ok {
		return nil
	}
	for i := range f.Routes {
		if f.Routes[i].ID == routeID {
			f.Routes[i].BookedSeats = removeAll(f.Routes[i].BookedSeats, seats)
		}
	}
	for i := range f.Classes {
		if f.Classes[i].ClassName == className {
			f.Classes[i].AvailableSeats += len(seats)
			if f.Classes[i].AvailableSeats > f.Classes[i].TotalSeats {
				f.Classes[i].AvailableSeats = f.Classes[i].TotalSeats
			}
		}
	}
	return nil
}

type fakeCarRepo struct {
	mu   sync.Mutex
	cars map[string]*models.Car
}

func newFakeCarRepo(cars ...*models.Car) *fakeCarRepo {
	r := &fakeCarRepo{cars: make(map[string]*models.Car)}
	for _, c := range cars {
		r.cars[c.ID] = c
	}
	return r
}

func (r *fakeCarRepo) Create(c *models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cars[c.ID] = c
	return nil
}

func (r *fakeCarRepo) GetByID(id string) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cars[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCarRepo) List(activeOnly bool) ([]models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Car
	for _, c := range r.cars {
		if !activeOnly || c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCarRepo) ListNearby(longitude, latitude, maxDistanceMeters float64) ([]models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Car
	for _, c := range r.cars {
		if c.IsActive && c.IsVerified && c.CurrentLocation != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCarRepo) AppendBooking(_ context.Context, carID, bookingDocID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.cars[carID]; ok {
		c.Bookings = append(c.Bookings, bookingDocID)
	}
	return nil
}

func anyTaken(requested, booked []string) bool {
	taken := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		taken[s] = struct{}{}
	}
	for _, s := range requested {
		if _, ok := taken[s]; ok {
			return true
		}
	}
	return false
}

func removeAll(from, remove []string) []string {
	drop := make(map[string]struct{}, len(remove))
	for _, s := range remove {
		drop[s] = struct{}{}
	}
	var out []string
	for _, s := range from {
		if _, ok := drop[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
