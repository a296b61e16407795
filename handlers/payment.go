package handlers

import (
	"net/http"

	paymentSvc "ticketly/services/payment"
	"ticketly/utils"

	"github.com/gin-gonic/gin"
)

// CreatePaymentIntent raises a Stripe payment intent for a booking.
func CreatePaymentIntent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req paymentSvc.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	intent, err := PaymentService.CreateIntent(c.Request.Context(), userID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "intent": intent})
}

// ConfirmPayment records a completed payment against a booking.
func ConfirmPayment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req paymentSvc.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	payment, err := PaymentService.Confirm(c.Request.Context(), userID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment successful",
		"payment": payment,
	})
}

// RefundPayment processes a refund for a completed payment.
func RefundPayment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Amount float64 `json:"amount"`
		Reason string  `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	payment, err := PaymentService.Refund(c.Request.Context(), userID, c.Param("paymentId"), req.Reason, req.Amount)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Refund processed",
		"payment": payment,
	})
}

// GetPaymentDetails fetches one payment record.
func GetPaymentDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	payment, err := PaymentService.GetDetails(userID, c.Param("paymentId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
}
