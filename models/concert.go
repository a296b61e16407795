package models

import "time"

// Artist performing at a concert.
type Artist struct {
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// Venue where a concert takes place.
type Venue struct {
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
}

// TicketCategory is a priced tier of concert tickets. Unlike shows and
// routes, bookings here are a counter, not a list of seat codes.
type TicketCategory struct {
	Name        string   `bson:"name" json:"name"` // Gold, Premium, Silver
	Price       float64  `bson:"price" json:"price"`
	TotalSeats  int      `bson:"totalSeats" json:"totalSeats"`
	BookedSeats int      `bson:"bookedSeats" json:"bookedSeats"`
	SeatLayout  []string `bson:"seatLayout,omitempty" json:"seatLayout,omitempty"`
}

// Concert is a catalog entry with per-category ticket inventory.
type Concert struct {
	ID               string           `bson:"id" json:"id"`
	Name             string           `bson:"name" json:"name"`
	Artists          []Artist         `bson:"artists,omitempty" json:"artists,omitempty"`
	Description      string           `bson:"description,omitempty" json:"description,omitempty"`
	Date             time.Time        `bson:"date" json:"date"`
	Venue            Venue            `bson:"venue" json:"venue"`
	PosterURL        string           `bson:"posterUrl,omitempty" json:"posterUrl,omitempty"`
	TotalCapacity    int              `bson:"totalCapacity" json:"totalCapacity"`
	TicketCategories []TicketCategory `bson:"ticketCategories" json:"ticketCategories"`
	IsActive         bool             `bson:"isActive" json:"isActive"`
	CreatedAt        time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time        `bson:"updatedAt" json:"updatedAt"`
}
