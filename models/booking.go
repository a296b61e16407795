package models

import "time"

// Booking types, one per inventory collection.
const (
	BookingTypeMovie   = "Movie"
	BookingTypeConcert = "Concert"
	BookingTypeBus     = "Bus"
	BookingTypeTrain   = "Train"
	BookingTypeFlight  = "Flight"
	BookingTypeCar     = "Car"
)

// Booking lifecycle status.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// Payment status on a booking.
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

// Booking is one reservation record in the ledger. Records are never deleted;
// lifecycle moves through status transitions only.
type Booking struct {
	ID                 string           `bson:"id" json:"id"`
	BookingID          string           `bson:"bookingId" json:"bookingId"` // human-readable reference, unique
	UserID             string           `bson:"userId" json:"userId"`
	BookingType        string           `bson:"bookingType" json:"bookingType"`
	ItemID             string           `bson:"itemId" json:"itemId"`
	// SubUnitRef identifies the inventory sub-unit the seats were taken
	// from (show id, route id); CategoryRef carries the named tier (concert
	// category, flight class). Both are needed to release seats on
	// cancellation when that policy is enabled.
	SubUnitRef         string           `bson:"subUnitRef,omitempty" json:"subUnitRef,omitempty"`
	CategoryRef        string           `bson:"categoryRef,omitempty" json:"categoryRef,omitempty"`
	TravelerDetails    []TravelerDetail `bson:"travelerDetails,omitempty" json:"travelerDetails,omitempty"`
	Seats              []string         `bson:"seats" json:"seats"`
	SelectedSeatsCount int              `bson:"selectedSeatsCount" json:"selectedSeatsCount"`
	PricePerSeat       float64          `bson:"pricePerSeat" json:"pricePerSeat"`
	TotalAmount        float64          `bson:"totalAmount" json:"totalAmount"`
	BookingDate        time.Time        `bson:"bookingDate" json:"bookingDate"`
	JourneyDate        time.Time        `bson:"journeyDate" json:"journeyDate"`
	DepartureTime      string           `bson:"departureTime,omitempty" json:"departureTime,omitempty"`
	DepartureLocation  string           `bson:"departureLocation,omitempty" json:"departureLocation,omitempty"`
	ArrivalLocation    string           `bson:"arrivalLocation,omitempty" json:"arrivalLocation,omitempty"`
	Status             string           `bson:"status" json:"status"`
	PaymentID          string           `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	PaymentStatus      string           `bson:"paymentStatus" json:"paymentStatus"`
	CancellationReason string           `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CancellationDate   *time.Time       `bson:"cancellationDate,omitempty" json:"cancellationDate,omitempty"`
	RefundAmount       float64          `bson:"refundAmount,omitempty" json:"refundAmount,omitempty"`
	ReminderSent       bool             `bson:"reminderSent" json:"reminderSent"`
	ReminderSentAt     *time.Time       `bson:"reminderSentAt,omitempty" json:"reminderSentAt,omitempty"`
	Notes              string           `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt          time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time        `bson:"updatedAt" json:"updatedAt"`
}
