package models

import "time"

// BusRoute is one scheduled leg of a bus. Seat codes are tracked per route,
// but capacity is the parent bus's totalSeats.
type BusRoute struct {
	ID              string    `bson:"id" json:"id"`
	Source          Place     `bson:"source" json:"source"`
	Destination     Place     `bson:"destination" json:"destination"`
	DepartureTime   string    `bson:"departureTime" json:"departureTime"`
	ArrivalTime     string    `bson:"arrivalTime,omitempty" json:"arrivalTime,omitempty"`
	JourneyDuration string    `bson:"journeyDuration,omitempty" json:"journeyDuration,omitempty"`
	Fare            float64   `bson:"fare" json:"fare"`
	BookedSeats     []string  `bson:"bookedSeats" json:"bookedSeats"`
	Date            time.Time `bson:"date,omitempty" json:"date,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// Bus is a catalog entry holding its routes as sub-documents.
type Bus struct {
	BusID        string     `bson:"id" json:"id"`
	BusNumber    string     `bson:"busNumber" json:"busNumber"`
	BusName      string     `bson:"busName" json:"busName"`
	OperatorName string     `bson:"operatorName" json:"operatorName"`
	BusType      string     `bson:"busType" json:"busType"` // AC, Non-AC, Sleeper, Semi-Sleeper
	TotalSeats   int        `bson:"totalSeats" json:"totalSeats"`
	Routes       []BusRoute `bson:"routes" json:"routes"`
	Amenities    []string   `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Rating       float64    `bson:"rating" json:"rating"`
	IsActive     bool       `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}
