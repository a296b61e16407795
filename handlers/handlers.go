package handlers

import (
	inventoryRepo "ticketly/database/repository/inventory"
	bookingSvc "ticketly/services/booking"
	paymentSvc "ticketly/services/payment"
	userSvc "ticketly/services/user"
	"ticketly/utils"

	"github.com/gin-gonic/gin"
)

// Package-level service handles, wired once at startup after the database
// and Redis connections are up.
var (
	UserService    userSvc.UserService
	BookingService bookingSvc.BookingService
	PaymentService paymentSvc.PaymentService
	Catalog        CatalogRepos
)

// CatalogRepos bundles the six inventory repositories for the catalog
// endpoints.
type CatalogRepos struct {
	Movies   inventoryRepo.MovieRepository
	Concerts inventoryRepo.ConcertRepository
	Buses    inventoryRepo.BusRepository
	Trains   inventoryRepo.TrainRepository
	Flights  inventoryRepo.FlightRepository
	Cars     inventoryRepo.CarRepository
}

// Init wires the handler package to its services.
func Init(users userSvc.UserService, bookings bookingSvc.BookingService, payments paymentSvc.PaymentService, catalog CatalogRepos) {
	UserService = users
	BookingService = bookings
	PaymentService = payments
	Catalog = catalog
}

// currentUserID reads the user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	id := c.GetString("userID")
	if id == "" {
		utils.RespondError(c, utils.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return id, true
}
