package models

import "time"

// Payment record status.
const (
	PaymentRecordPending   = "Pending"
	PaymentRecordCompleted = "Completed"
	PaymentRecordFailed    = "Failed"
	PaymentRecordRefunded  = "Refunded"
)

// PaymentDetails carries masked instrument data.
type PaymentDetails struct {
	CardLast4 string `bson:"cardLast4,omitempty" json:"cardLast4,omitempty"`
	CardBrand string `bson:"cardBrand,omitempty" json:"cardBrand,omitempty"`
	UPIID     string `bson:"upiId,omitempty" json:"upiId,omitempty"`
}

// RefundDetails records a processed refund.
type RefundDetails struct {
	RefundID     string     `bson:"refundId,omitempty" json:"refundId,omitempty"`
	RefundAmount float64    `bson:"refundAmount,omitempty" json:"refundAmount,omitempty"`
	RefundReason string     `bson:"refundReason,omitempty" json:"refundReason,omitempty"`
	RefundDate   *time.Time `bson:"refundDate,omitempty" json:"refundDate,omitempty"`
	RefundStatus string     `bson:"refundStatus,omitempty" json:"refundStatus,omitempty"`
}

// Payment is one payment attempt against a booking.
type Payment struct {
	ID              string         `bson:"id" json:"id"`
	BookingID       string         `bson:"bookingId" json:"bookingId"` // booking document id
	UserID          string         `bson:"userId" json:"userId"`
	Amount          float64        `bson:"amount" json:"amount"`
	Currency        string         `bson:"currency" json:"currency"`
	PaymentMethod   string         `bson:"paymentMethod" json:"paymentMethod"` // Credit Card, Debit Card, UPI, Net Banking, Wallet
	StripePaymentID string         `bson:"stripePaymentId,omitempty" json:"stripePaymentId,omitempty"`
	TransactionID   string         `bson:"transactionId" json:"transactionId"` // unique
	Status          string         `bson:"status" json:"status"`
	PaymentDetails  PaymentDetails `bson:"paymentDetails,omitempty" json:"paymentDetails,omitempty"`
	RefundDetails   *RefundDetails `bson:"refundDetails,omitempty" json:"refundDetails,omitempty"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time      `bson:"updatedAt" json:"updatedAt"`
}
