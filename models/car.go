package models

import "time"

// CarRatings aggregates rider feedback for a car.
type CarRatings struct {
	Average      float64 `bson:"average" json:"average"`
	TotalRatings int     `bson:"totalRatings" json:"totalRatings"`
}

// GeoPoint is a GeoJSON point for the car's current location.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// Car is a single bookable resource. There is no seat inventory; a ride is
// limited only by seating capacity, and overlapping time windows are not
// checked.
type Car struct {
	ID                 string     `bson:"id" json:"id"`
	RegistrationNumber string     `bson:"registrationNumber" json:"registrationNumber"`
	CarModel           string     `bson:"carModel" json:"carModel"`
	Manufacturer       string     `bson:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	CarType            string     `bson:"carType" json:"carType"` // Economy, Comfort, Premium, XL
	SeatingCapacity    int        `bson:"seatingCapacity" json:"seatingCapacity"`
	Color              string     `bson:"color,omitempty" json:"color,omitempty"`
	TransmissionType   string     `bson:"transmissionType,omitempty" json:"transmissionType,omitempty"`
	AirConditioned     bool       `bson:"airconditioned,omitempty" json:"airconditioned,omitempty"`
	FuelType           string     `bson:"fuelType,omitempty" json:"fuelType,omitempty"`
	PricePerKm         float64    `bson:"pricePerKm" json:"pricePerKm"`
	MinimumFare        float64    `bson:"minimumFare" json:"minimumFare"`
	Images             []string   `bson:"images,omitempty" json:"images,omitempty"`
	Ratings            CarRatings `bson:"ratings" json:"ratings"`
	IsVerified         bool       `bson:"isVerified" json:"isVerified"`
	IsActive           bool       `bson:"isActive" json:"isActive"`
	CurrentLocation    *GeoPoint  `bson:"currentLocation,omitempty" json:"currentLocation,omitempty"`
	Bookings           []string   `bson:"bookings" json:"bookings"`
	CreatedAt          time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt" json:"updatedAt"`
}
