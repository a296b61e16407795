package models

import "time"

// Per-type booking projections returned by the reservation endpoints. Each
// carries the ledger reference, the charged amount and the display fields
// the client renders on the confirmation screen.

type MovieBookingResponse struct {
	BookingID   string   `json:"bookingId"`
	TotalAmount float64  `json:"totalAmount"`
	Seats       []string `json:"seats"`
	MovieName   string   `json:"movieName"`
	Theater     string   `json:"theater"`
	Time        string   `json:"time"`
}

type ConcertBookingResponse struct {
	BookingID   string    `json:"bookingId"`
	TotalAmount float64   `json:"totalAmount"`
	Seats       []string  `json:"seats"`
	ConcertName string    `json:"concertName"`
	Category    string    `json:"category"`
	Venue       string    `json:"venue"`
	Date        time.Time `json:"date"`
}

type BusBookingResponse struct {
	BookingID     string   `json:"bookingId"`
	TotalAmount   float64  `json:"totalAmount"`
	Seats         []string `json:"seats"`
	BusName       string   `json:"busName"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	DepartureTime string   `json:"departureTime"`
}

type TrainBookingResponse struct {
	BookingID   string    `json:"bookingId"`
	TotalAmount float64   `json:"totalAmount"`
	Seats       []string  `json:"seats"`
	TrainNumber string    `json:"trainNumber"`
	TrainName   string    `json:"trainName"`
	JourneyDate time.Time `json:"journeyDate"`
}

type FlightBookingResponse struct {
	BookingID     string   `json:"bookingId"`
	TotalAmount   float64  `json:"totalAmount"`
	Seats         []string `json:"seats"`
	FlightNumber  string   `json:"flightNumber"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	ClassType     string   `json:"classType"`
	DepartureTime string   `json:"departureTime"`
}

type CarBookingResponse struct {
	BookingID      string  `json:"bookingId"`
	TotalAmount    float64 `json:"totalAmount"`
	CarModel       string  `json:"carModel"`
	PickupLocation string  `json:"pickupLocation"`
	DropLocation   string  `json:"dropLocation"`
	PickupTime     string  `json:"pickupTime"`
	DropTime       string  `json:"dropTime"`
	PassengerCount int     `json:"passengerCount"`
}
