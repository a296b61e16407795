package handlers

import (
	"net/http"

	bookingSvc "ticketly/services/booking"
	"ticketly/utils"

	"github.com/gin-gonic/gin"
)

// BookMovie reserves seats on one show of a movie.
func BookMovie(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req bookingSvc.MovieBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	resp, err := BookingService.BookMovie(c.Request.Context(), userID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed",
		"booking": resp,
	})
}

// BookConcert reserves tickets in a concert category.
func BookConcert(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req bookingSvc.ConcertBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	resp, err := BookingService.BookConcert(c.Request.Context(), userID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed",
		"booking": resp,
	})
}

// BookBus reserves seats on a bus route.
func BookBus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req bookingSvc.BusBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	resp, err := BookingService.BookBus(c.Request.Context(), userID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed",
		"booking": resp,
	})
}

// BookTrain reserves seats on a train journey date.
func BookTrain(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req bookingSvc.TrainBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	resp, err := BookingService.BookTrain(c.Request.Context(), userID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed",
		"booking": resp,
	})
}

// BookFlight reserves seats on a flight route and class.
func BookFlight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req bookingSvc.FlightBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	resp, err := BookingService.BookFlight(c.Request.Context(), userID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed",
		"booking": resp,
	})
}

// BookCar books a car for a time window.
func BookCar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req bookingSvc.CarBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	resp, err := BookingService.BookCar(c.Request.Context(), userID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed",
		"booking": resp,
	})
}

// GetUserBookings lists the caller's bookings, newest first.
func GetUserBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookings, err := BookingService.GetUserBookings(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// GetBookingDetails fetches one booking by its reference.
func GetBookingDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	booking, err := BookingService.GetBookingDetails(userID, c.Param("bookingId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// CancelBooking cancels a booking and reports the refund amount.
func CancelBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	// Reason is optional; an empty body is fine.
	_ = c.ShouldBindJSON(&req)

	refund, err := BookingService.CancelBooking(c.Request.Context(), userID, c.Param("bookingId"), req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Booking cancelled",
		"refundAmount": refund,
	})
}
