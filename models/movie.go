package models

import "time"

// Show is one screening of a movie. Seats are tracked by explicit seat codes.
type Show struct {
	ID          string    `bson:"id" json:"id"`
	Time        string    `bson:"time" json:"time"`
	Theater     string    `bson:"theater" json:"theater"`
	Price       float64   `bson:"price" json:"price"`
	TotalSeats  int       `bson:"totalSeats" json:"totalSeats"`
	BookedSeats []string  `bson:"bookedSeats" json:"bookedSeats"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Movie is a catalog entry holding its shows as sub-documents.
type Movie struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Genre       []string  `bson:"genre" json:"genre"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Language    string    `bson:"language" json:"language"`
	Rating      float64   `bson:"rating" json:"rating"`
	PosterURL   string    `bson:"posterUrl,omitempty" json:"posterUrl,omitempty"`
	ReleaseDate time.Time `bson:"releaseDate,omitempty" json:"releaseDate,omitempty"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Shows       []Show    `bson:"shows" json:"shows"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
