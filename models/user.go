package models

import "time"

// User account. Password is stored as a bcrypt hash and never serialized.
type User struct {
	ID              string     `bson:"id" json:"id"`
	FirstName       string     `bson:"firstName" json:"firstName"`
	LastName        string     `bson:"lastName" json:"lastName"`
	Email           string     `bson:"email" json:"email"`
	PhoneNumber     string     `bson:"phoneNumber" json:"phoneNumber"`
	PasswordHash    string     `bson:"passwordHash" json:"-"`
	IsEmailVerified bool       `bson:"isEmailVerified" json:"isEmailVerified"`
	EmailVerifiedAt *time.Time `bson:"emailVerifiedAt,omitempty" json:"emailVerifiedAt,omitempty"`
	Bookings        []string   `bson:"bookings" json:"bookings"` // booking document ids
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// FullName joins first and last name for notifications.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
