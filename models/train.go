package models

import "time"

// TrainRoute is one leg of a train's itinerary. Routes carry no seat state;
// seats live on per-date journeys.
type TrainRoute struct {
	ID              string  `bson:"id" json:"id"`
	Source          Station `bson:"source" json:"source"`
	Destination     Station `bson:"destination" json:"destination"`
	DepartureTime   string  `bson:"departureTime" json:"departureTime"`
	ArrivalTime     string  `bson:"arrivalTime,omitempty" json:"arrivalTime,omitempty"`
	JourneyDuration string  `bson:"journeyDuration,omitempty" json:"journeyDuration,omitempty"`
	Distance        float64 `bson:"distance,omitempty" json:"distance,omitempty"`
}

// Coach describes a carriage type and its seat count.
type Coach struct {
	CoachNumber    string             `bson:"coachNumber" json:"coachNumber"`
	CoachType      string             `bson:"coachType" json:"coachType"` // AC First, AC 2-Tier, AC 3-Tier, Sleeper, General
	TotalSeats     int                `bson:"totalSeats" json:"totalSeats"`
	AvailableSeats int                `bson:"availableSeats,omitempty" json:"availableSeats,omitempty"`
	FareBySeatType map[string]float64 `bson:"fareBySeatType,omitempty" json:"fareBySeatType,omitempty"`
}

// Journey holds seat state for one calendar date. Journeys are created
// lazily on the first booking for that date.
type Journey struct {
	Date                time.Time `bson:"date" json:"date"`
	TotalAvailableSeats int       `bson:"totalAvailableSeats" json:"totalAvailableSeats"`
	BookedSeats         []string  `bson:"bookedSeats" json:"bookedSeats"`
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
}

// Train is a catalog entry with routes, coaches and per-date journeys.
type Train struct {
	ID          string       `bson:"id" json:"id"`
	TrainNumber string       `bson:"trainNumber" json:"trainNumber"`
	TrainName   string       `bson:"trainName" json:"trainName"`
	RunningDays []string     `bson:"runningDays" json:"runningDays"`
	Routes      []TrainRoute `bson:"routes" json:"routes"`
	Coaches     []Coach      `bson:"coaches" json:"coaches"`
	Journeys    []Journey    `bson:"journeys" json:"journeys"`
	IsActive    bool         `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// SeatCapacity is the journey capacity synthesized for a new date: the sum
// of all coach seat counts.
func (t *Train) SeatCapacity() int {
	total := 0
	for _, c := range t.Coaches {
		total += c.TotalSeats
	}
	return total
}
