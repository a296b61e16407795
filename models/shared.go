package models

// TravelerDetail captures one passenger on a booking.
type TravelerDetail struct {
	Name        string `bson:"name" json:"name"`
	Age         int    `bson:"age,omitempty" json:"age,omitempty"`
	Gender      string `bson:"gender,omitempty" json:"gender,omitempty"`
	PhoneNumber string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
}

// Place is a named location used by bus routes.
type Place struct {
	Name string `bson:"name" json:"name"`
	City string `bson:"city,omitempty" json:"city,omitempty"`
}

// Station is a coded stop used by train and flight routes.
type Station struct {
	Name    string `bson:"name" json:"name"`
	Code    string `bson:"code,omitempty" json:"code,omitempty"`
	Airport string `bson:"airport,omitempty" json:"airport,omitempty"`
}
