package payment

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	bookingRepo "ticketly/database/repository/booking"
	paymentRepo "ticketly/database/repository/payment"
	userRepo "ticketly/database/repository/user"
	"ticketly/models"
	"ticketly/services/notification"
	"ticketly/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"
)

var allowedMethods = map[string]bool{
	"Credit Card": true,
	"Debit Card":  true,
	"UPI":         true,
	"Net Banking": true,
	"Wallet":      true,
}

// CreateIntentRequest identifies the booking to raise a payment intent for.
type CreateIntentRequest struct {
	BookingID string `json:"bookingId"`
}

// IntentResponse returns the Stripe handle the client completes payment with.
type IntentResponse struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// ConfirmRequest records a completed payment against a booking.
type ConfirmRequest struct {
	BookingID       string                `json:"bookingId"`
	PaymentMethod   string                `json:"paymentMethod"`
	StripePaymentID string                `json:"stripePaymentId"`
	PaymentDetails  models.PaymentDetails `json:"paymentDetails"`
}

// PaymentService handles the payment lifecycle for bookings.
type PaymentService interface {
	CreateIntent(ctx context.Context, userID string, req CreateIntentRequest) (*IntentResponse, error)
	Confirm(ctx context.Context, userID string, req ConfirmRequest) (*models.Payment, error)
	Refund(ctx context.Context, userID, paymentID, reason string, amount float64) (*models.Payment, error)
	GetDetails(userID, paymentID string) (*models.Payment, error)
}

// DefaultPaymentService wires the payment ledger to Stripe. When no Stripe
// key is configured the service still records payments and refunds; only the
// gateway calls are skipped.
type DefaultPaymentService struct {
	Payments paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService

	Currency  string
	StripeKey string
}

// GenerateTransactionID builds the transaction reference. Uniqueness is
// enforced by the payments collection's unique index.
func GenerateTransactionID() string {
	return fmt.Sprintf("TXN%d%d", time.Now().UnixMilli(), rand.Intn(10000))
}

func (s *DefaultPaymentService) currency() string {
	if s.Currency == "" {
		return "inr"
	}
	return strings.ToLower(s.Currency)
}

// CreateIntent raises a Stripe payment intent for the booking's total.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, userID string, req CreateIntentRequest) (*IntentResponse, error) {
	if req.BookingID == "" {
		return nil, utils.NewValidationError("Please provide all required fields")
	}

	booking, err := s.Bookings.GetByRef(req.BookingID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("Booking not found")
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, utils.NewConflictError("Cannot pay for a cancelled booking")
	}
	if booking.PaymentStatus == models.PaymentStatusCompleted {
		return nil, utils.NewConflictError("Booking is already paid")
	}

	if s.StripeKey == "" {
		return nil, utils.NewValidationError("Payment gateway is not configured")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(booking.TotalAmount * 100)),
		Currency: stripe.String(s.currency()),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", booking.BookingID)
	params.AddMetadata("userId", userID)
	params.AddMetadata("bookingType", booking.BookingType)

	intent, err := paymentintent.New(params)
	if err != nil {
		utils.GetLogger().Error("failed to create payment intent",
			zap.String("bookingId", booking.BookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &IntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          booking.TotalAmount,
		Currency:        s.currency(),
	}, nil
}

// Confirm records a completed payment and marks the booking paid. The
// confirmation email goes out in the background; a delivery failure never
// fails the payment.
func (s *DefaultPaymentService) Confirm(ctx context.Context, userID string, req ConfirmRequest) (*models.Payment, error) {
	if req.BookingID == "" || req.PaymentMethod == "" {
		return nil, utils.NewValidationError("Please provide all required fields")
	}
	if !allowedMethods[req.PaymentMethod] {
		return nil, utils.NewValidationError("Invalid payment method")
	}

	booking, err := s.Bookings.GetByRef(req.BookingID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("Booking not found")
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, utils.NewConflictError("Cannot pay for a cancelled booking")
	}
	if booking.PaymentStatus == models.PaymentStatusCompleted {
		return nil, utils.NewConflictError("Booking is already paid")
	}

	payment := &models.Payment{
		ID:              uuid.New().String(),
		BookingID:       booking.ID,
		UserID:          userID,
		Amount:          booking.TotalAmount,
		Currency:        s.currency(),
		PaymentMethod:   req.PaymentMethod,
		StripePaymentID: req.StripePaymentID,
		TransactionID:   GenerateTransactionID(),
		Status:          models.PaymentRecordCompleted,
		PaymentDetails:  req.PaymentDetails,
	}
	if err := s.Payments.Insert(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.Bookings.SetPaymentCompleted(booking.ID, payment.ID); err != nil {
		return nil, err
	}

	go s.sendConfirmation(userID, booking, payment)

	return payment, nil
}

func (s *DefaultPaymentService) sendConfirmation(userID string, booking *models.Booking, payment *models.Payment) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	user, err := s.Users.GetByID(userID)
	if err != nil || user == nil {
		utils.GetLogger().Warn("skipping confirmation email, user lookup failed",
			zap.String("userId", userID), zap.Error(err))
		return
	}

	details := notification.ConfirmationDetails{
		UserName:    user.FullName(),
		BookingID:   booking.BookingID,
		BookingType: booking.BookingType,
		JourneyDate: booking.JourneyDate.Format("02 Jan 2006"),
		Seats:       strings.Join(booking.Seats, ", "),
		TotalAmount: payment.Amount,
		Venue:       booking.DepartureLocation,
	}
	if err := s.Notifier.SendBookingConfirmation(ctx, user.Email, details); err != nil {
		utils.GetLogger().Warn("failed to send booking confirmation",
			zap.String("bookingId", booking.BookingID), zap.Error(err))
	}
}

// Refund processes a refund for a completed payment. When the payment holds
// a Stripe reference the refund also goes through the gateway.
func (s *DefaultPaymentService) Refund(ctx context.Context, userID, paymentID, reason string, amount float64) (*models.Payment, error) {
	payment, err := s.Payments.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != userID {
		return nil, utils.NewNotFoundError("Payment not found")
	}
	if payment.Status == models.PaymentRecordRefunded {
		return nil, utils.NewConflictError("Payment is already refunded")
	}
	if amount <= 0 || amount > payment.Amount {
		return nil, utils.NewValidationError("Invalid refund amount")
	}

	details := &models.RefundDetails{
		RefundID:     uuid.New().String(),
		RefundAmount: amount,
		RefundReason: reason,
		RefundStatus: "Processed",
	}

	if payment.StripePaymentID != "" && s.StripeKey != "" {
		params := &stripe.RefundParams{
			PaymentIntent: stripe.String(payment.StripePaymentID),
			Amount:        stripe.Int64(int64(amount * 100)),
		}
		ref, err := refund.New(params)
		if err != nil {
			utils.GetLogger().Error("stripe refund failed",
				zap.String("paymentId", payment.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to process refund: %w", err)
		}
		details.RefundID = ref.ID
	}

	now := time.Now()
	details.RefundDate = &now

	refunded, err := s.Payments.MarkRefunded(payment.ID, details)
	if err != nil {
		return nil, err
	}
	if !refunded {
		return nil, utils.NewConflictError("Payment is already refunded")
	}

	payment.Status = models.PaymentRecordRefunded
	payment.RefundDetails = details
	return payment, nil
}

// GetDetails fetches a payment scoped to its owner.
func (s *DefaultPaymentService) GetDetails(userID, paymentID string) (*models.Payment, error) {
	payment, err := s.Payments.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != userID {
		return nil, utils.NewNotFoundError("Payment not found")
	}
	return payment, nil
}
