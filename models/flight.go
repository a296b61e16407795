package models

import "time"

// Airline identity displayed with a flight.
type Airline struct {
	Name    string `bson:"name" json:"name"`
	LogoURL string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
}

// FlightRoute is one scheduled leg. Seat codes are tracked on the route;
// per-class capacity is tracked on FlightClass counters.
type FlightRoute struct {
	ID                  string    `bson:"id" json:"id"`
	Source              Station   `bson:"source" json:"source"`
	Destination         Station   `bson:"destination" json:"destination"`
	DepartureTime       string    `bson:"departureTime" json:"departureTime"`
	ArrivalTime         string    `bson:"arrivalTime,omitempty" json:"arrivalTime,omitempty"`
	JourneyDuration     string    `bson:"journeyDuration,omitempty" json:"journeyDuration,omitempty"`
	Date                time.Time `bson:"date,omitempty" json:"date,omitempty"`
	TotalSeats          int       `bson:"totalSeats,omitempty" json:"totalSeats,omitempty"`
	TotalAvailableSeats int       `bson:"totalAvailableSeats,omitempty" json:"totalAvailableSeats,omitempty"`
	BookedSeats         []string  `bson:"bookedSeats" json:"bookedSeats"`
}

// FlightClass is a priced cabin class with a live availability counter.
type FlightClass struct {
	ClassName      string  `bson:"className" json:"className"` // Economy, Business, First Class
	Price          float64 `bson:"price" json:"price"`
	TotalSeats     int     `bson:"totalSeats" json:"totalSeats"`
	AvailableSeats int     `bson:"availableSeats" json:"availableSeats"`
}

// Flight is a catalog entry with routes and cabin classes.
type Flight struct {
	ID           string        `bson:"id" json:"id"`
	FlightNumber string        `bson:"flightNumber" json:"flightNumber"`
	Airline      Airline       `bson:"airline" json:"airline"`
	AircraftType string        `bson:"aircraftType,omitempty" json:"aircraftType,omitempty"`
	Routes       []FlightRoute `bson:"routes" json:"routes"`
	Classes      []FlightClass `bson:"classes" json:"classes"`
	Amenities    []string      `bson:"amenities,omitempty" json:"amenities,omitempty"`
	IsActive     bool          `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}
