package bookingRepo

import (
	"fmt"
	"time"

	"ticketly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByBookingID fetches by human-readable reference, scoped to the owner.
func (r *MongoBookingRepo) GetByBookingID(bookingID, userID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID, "userId": userID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// GetByRef matches either the document id or the human-readable reference.
func (r *MongoBookingRepo) GetByRef(ref, userID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"$or":    bson.A{bson.M{"id": ref}, bson.M{"bookingId": ref}},
	}
	var booking models.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", ref, err)
	}
	return &booking, nil
}

// ListByUser returns the user's bookings, newest first.
func (r *MongoBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Cancel transitions a booking to Cancelled. The status guard in the filter
// makes re-cancellation a no-op that reports false, leaving the first
// cancellation's refund untouched.
func (r *MongoBookingRepo) Cancel(bookingID, userID, reason string, refundAmount float64) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"bookingId": bookingID,
		"userId":    userID,
		"status":    bson.M{"$ne": models.BookingStatusCancelled},
	}
	update := bson.M{"$set": bson.M{
		"status":             models.BookingStatusCancelled,
		"cancellationReason": reason,
		"cancellationDate":   now,
		"refundAmount":       refundAmount,
		"updatedAt":          now,
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	return result.MatchedCount > 0, nil
}

// SetPaymentCompleted links the payment record and marks the booking paid and
// confirmed.
func (r *MongoBookingRepo) SetPaymentCompleted(bookingDocID, paymentID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"paymentId":     paymentID,
		"paymentStatus": models.PaymentStatusCompleted,
		"status":        models.BookingStatusConfirmed,
		"updatedAt":     time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": bookingDocID}, update)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s paid: %w", bookingDocID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", bookingDocID)
	}
	return nil
}

// FindDueReminders returns confirmed, not-yet-reminded bookings with a
// journey date inside [from, to].
func (r *MongoBookingRepo) FindDueReminders(from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":       models.BookingStatusConfirmed,
		"reminderSent": bson.M{"$ne": true},
		"journeyDate":  bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find due reminders: %w", err)
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode reminder bookings: %w", err)
	}
	return bookings, nil
}

// MarkReminderSent claims the reminder for this booking. The reminderSent
// guard means only one of several concurrent workers wins the claim.
func (r *MongoBookingRepo) MarkReminderSent(bookingDocID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"id": bookingDocID, "reminderSent": bson.M{"$ne": true}}
	update := bson.M{"$set": bson.M{
		"reminderSent":   true,
		"reminderSentAt": now,
		"updatedAt":      now,
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder sent for %s: %w", bookingDocID, err)
	}
	return result.ModifiedCount > 0, nil
}
