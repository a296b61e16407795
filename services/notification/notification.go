package notification

import (
	"context"

	"ticketly/models"
	"ticketly/utils"

	"go.uber.org/zap"
)

// ConfirmationDetails carries everything the confirmation mail renders.
type ConfirmationDetails struct {
	UserName    string
	BookingID   string
	BookingType string
	JourneyDate string
	Seats       string
	TotalAmount float64
	Venue       string
}

// NotificationService sends outbound user email. Delivery failures never
// propagate into the booking/payment flows that trigger them.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, email string, details ConfirmationDetails) error
	SendReminderEmail(ctx context.Context, email string, booking *models.Booking) error
	SendOTPEmail(ctx context.Context, email, otp, otpType string) error
}

// LogNotificationService writes outbound mail to the log instead of an SMTP
// relay. Swap in a real sender by implementing NotificationService.
type LogNotificationService struct{}

func (s *LogNotificationService) SendBookingConfirmation(ctx context.Context, email string, details ConfirmationDetails) error {
	utils.GetLogger().Info("sending booking confirmation email",
		zap.String("email", email),
		zap.String("bookingId", details.BookingID),
		zap.String("bookingType", details.BookingType),
		zap.Float64("totalAmount", details.TotalAmount),
	)
	return nil
}

func (s *LogNotificationService) SendReminderEmail(ctx context.Context, email string, booking *models.Booking) error {
	utils.GetLogger().Info("sending reminder email",
		zap.String("email", email),
		zap.String("bookingId", booking.BookingID),
		zap.Time("journeyDate", booking.JourneyDate),
	)
	return nil
}

func (s *LogNotificationService) SendOTPEmail(ctx context.Context, email, otp, otpType string) error {
	utils.GetLogger().Info("sending OTP email",
		zap.String("email", email),
		zap.String("type", otpType),
	)
	return nil
}
