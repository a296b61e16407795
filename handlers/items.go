package handlers

import (
	"net/http"
	"strconv"

	"ticketly/models"
	"ticketly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Catalog endpoints: list, details and create for each of the six item
// types. Listing defaults to active items only; ?all=true includes inactive
// ones.

func activeOnly(c *gin.Context) bool {
	return c.Query("all") != "true"
}

// ListMovies returns the movie catalog.
func ListMovies(c *gin.Context) {
	movies, err := Catalog.Movies.List(activeOnly(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "movies": movies})
}

// GetMovie returns one movie with its shows.
func GetMovie(c *gin.Context) {
	movie, err := Catalog.Movies.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if movie == nil {
		utils.RespondError(c, utils.NewNotFoundError("Movie not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "movie": movie})
}

// CreateMovie adds a movie with its shows to the catalog.
func CreateMovie(c *gin.Context) {
	var movie models.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}
	if movie.Name == "" || len(movie.Shows) == 0 {
		utils.RespondError(c, utils.NewValidationError("Please provide all required fields"))
		return
	}

	movie.ID = uuid.New().String()
	for i := range movie.Shows {
		if movie.Shows[i].ID == "" {
			movie.Shows[i].ID = uuid.New().String()
		}
	}
	movie.IsActive = true

	if err := Catalog.Movies.Create(&movie); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "movie": movie})
}

// ListConcerts returns the concert catalog.
func ListConcerts(c *gin.Context) {
	concerts, err := Catalog.Concerts.List(activeOnly(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "concerts": concerts})
}

// GetConcert returns one concert with its ticket categories.
func GetConcert(c *gin.Context) {
	concert, err := Catalog.Concerts.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if concert == nil {
		utils.RespondError(c, utils.NewNotFoundError("Concert not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "concert": concert})
}

// CreateConcert adds a concert to the catalog. Total capacity is derived
// from the category seat counts.
func CreateConcert(c *gin.Context) {
	var concert models.Concert
	if err := c.ShouldBindJSON(&concert); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}
	if concert.Name == "" || len(concert.TicketCategories) == 0 {
		utils.RespondError(c, utils.NewValidationError("Please provide all required fields"))
		return
	}

	concert.ID = uuid.New().String()
	total := 0
	for i := range concert.TicketCategories {
		concert.TicketCategories[i].BookedSeats = 0
		total += concert.TicketCategories[i].TotalSeats
	}
	concert.TotalCapacity = total
	concert.IsActive = true

	if err := Catalog.Concerts.Create(&concert); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "concert": concert})
}

// ListBuses returns the bus catalog, optionally filtered by route cities.
func ListBuses(c *gin.Context) {
	buses, err := Catalog.Buses.List(activeOnly(c), c.Query("source"), c.Query("destination"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "buses": buses})
}

// GetBus returns one bus with its routes.
func GetBus(c *gin.Context) {
	bus, err := Catalog.Buses.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if bus == nil {
		utils.RespondError(c, utils.NewNotFoundError("Bus not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bus": bus})
}

// CreateBus adds a bus with its routes to the catalog.
func CreateBus(c *gin.Context) {
	var bus models.Bus
	if err := c.ShouldBindJSON(&bus); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}
	if bus.BusNumber == "" || bus.BusName == "" || bus.TotalSeats == 0 {
		utils.RespondError(c, utils.NewValidationError("Please provide all required fields"))
		return
	}

	bus.BusID = uuid.New().String()
	for i := range bus.Routes {
		if bus.Routes[i].ID == "" {
			bus.Routes[i].ID = uuid.New().String()
		}
	}
	bus.IsActive = true

	if err := Catalog.Buses.Create(&bus); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "bus": bus})
}

// ListTrains returns the train catalog.
func ListTrains(c *gin.Context) {
	trains, err := Catalog.Trains.List(activeOnly(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trains": trains})
}

// GetTrain returns one train with its routes, coaches and journeys.
func GetTrain(c *gin.Context) {
	train, err := Catalog.Trains.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if train == nil {
		utils.RespondError(c, utils.NewNotFoundError("Train not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "train": train})
}

// CreateTrain adds a train to the catalog. Journeys are created lazily at
// booking time, never here.
func CreateTrain(c *gin.Context) {
	var train models.Train
	if err := c.ShouldBindJSON(&train); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}
	if train.TrainNumber == "" || train.TrainName == "" || len(train.Coaches) == 0 {
		utils.RespondError(c, utils.NewValidationError("Please provide all required fields"))
		return
	}

	train.ID = uuid.New().String()
	for i := range train.Routes {
		if train.Routes[i].ID == "" {
			train.Routes[i].ID = uuid.New().String()
		}
	}
	train.Journeys = []models.Journey{}
	train.IsActive = true

	if err := Catalog.Trains.Create(&train); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "train": train})
}

// ListFlights returns the flight catalog.
func ListFlights(c *gin.Context) {
	flights, err := Catalog.Flights.List(activeOnly(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "flights": flights})
}

// GetFlight returns one flight with its routes and classes.
func GetFlight(c *gin.Context) {
	flight, err := Catalog.Flights.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if flight == nil {
		utils.RespondError(c, utils.NewNotFoundError("Flight not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "flight": flight})
}

// CreateFlight adds a flight to the catalog. Class availability counters
// start at their seat totals.
func CreateFlight(c *gin.Context) {
	var flight models.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}
	if flight.FlightNumber == "" || len(flight.Classes) == 0 {
		utils.RespondError(c, utils.NewValidationError("Please provide all required fields"))
		return
	}

	flight.ID = uuid.New().String()
	for i := range flight.Routes {
		if flight.Routes[i].ID == "" {
			flight.Routes[i].ID = uuid.New().String()
		}
	}
	for i := range flight.Classes {
		flight.Classes[i].AvailableSeats = flight.Classes[i].TotalSeats
	}
	flight.IsActive = true

	if err := Catalog.Flights.Create(&flight); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "flight": flight})
}

// ListCars returns the car catalog.
func ListCars(c *gin.Context) {
	cars, err := Catalog.Cars.List(activeOnly(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cars": cars})
}

// ListNearbyCars returns active, verified cars close to a point. Expects
// longitude and latitude query parameters; maxDistance (meters) defaults to
// 5000.
func ListNearbyCars(c *gin.Context) {
	lngStr := c.Query("longitude")
	latStr := c.Query("latitude")
	if lngStr == "" || latStr == "" {
		utils.RespondError(c, utils.NewValidationError("Please provide longitude and latitude"))
		return
	}

	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	lat, latErr := strconv.ParseFloat(latStr, 64)
	if lngErr != nil || latErr != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid longitude or latitude"))
		return
	}

	maxDistance := 5000.0
	if raw := c.Query("maxDistance"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			utils.RespondError(c, utils.NewValidationError("Invalid maxDistance"))
			return
		}
		maxDistance = parsed
	}

	cars, err := Catalog.Cars.ListNearby(lng, lat, maxDistance)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(cars), "cars": cars})
}

// GetCar returns one car.
func GetCar(c *gin.Context) {
	car, err := Catalog.Cars.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if car == nil {
		utils.RespondError(c, utils.NewNotFoundError("Car not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "car": car})
}

// CreateCar adds a car to the catalog.
func CreateCar(c *gin.Context) {
	var car models.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}
	if car.RegistrationNumber == "" || car.CarModel == "" || car.SeatingCapacity == 0 {
		utils.RespondError(c, utils.NewValidationError("Please provide all required fields"))
		return
	}

	car.ID = uuid.New().String()
	car.Bookings = []string{}
	car.IsActive = true

	if err := Catalog.Cars.Create(&car); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "car": car})
}
