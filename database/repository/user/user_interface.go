package userRepo

import "ticketly/models"

// UserRepository defines data access for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	MarkEmailVerified(email string) error
	UpdatePassword(email, passwordHash string) error
	AppendBooking(userID, bookingDocID string) error
}
