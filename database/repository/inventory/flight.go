package inventoryRepo

import (
	"context"
	"fmt"
	"time"

	"ticketly/database"
	"ticketly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRepo implements FlightRepository using MongoDB.
type MongoFlightRepo struct {
	coll *mongo.Collection
}

// NewMongoFlightRepo creates a new FlightRepository backed by the flights collection.
func NewMongoFlightRepo() FlightRepository {
	coll := database.DB().Collection("flights")
	repo := &MongoFlightRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "flightNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create flight indexes: %v\n", err)
	}
	return repo
}

func (r *MongoFlightRepo) Create(flight *models.Flight) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	flight.CreatedAt = now
	flight.UpdatedAt = now
	for i := range flight.Routes {
		if flight.Routes[i].BookedSeats == nil {
			flight.Routes[i].BookedSeats = []string{}
		}
	}

	if _, err := r.coll.InsertOne(ctx, flight); err != nil {
		return err
	}
	return nil
}

func (r *MongoFlightRepo) GetByID(id string) (*models.Flight, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var flight models.Flight
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&flight)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flight %s: %w", id, err)
	}
	return &flight, nil
}

func (r *MongoFlightRepo) List(activeOnly bool) ([]models.Flight, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, activeFilter(activeOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	var flights []models.Flight
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, fmt.Errorf("failed to decode flights: %w", err)
	}
	return flights, nil
}

// ReserveFlightSeats commits both sides of a flight reservation in one
// update: the route's seat-code set grows and the class's availableSeats
// counter shrinks. Both guards sit in the filter, so neither side can commit
// without the other.
func (r *MongoFlightRepo) ReserveFlightSeats(ctx context.Context, flightID, routeID, className string, seats []string) error {
	filter := bson.M{
		"id": flightID,
		"routes": bson.M{"$elemMatch": bson.M{
			"id":          routeID,
			"bookedSeats": bson.M{"$nin": seats},
		}},
		"classes": bson.M{"$elemMatch": bson.M{
			"className":      className,
			"availableSeats": bson.M{"$gte": len(seats)},
		}},
	}
	update := bson.M{
		"$addToSet": bson.M{"routes.$[rt].bookedSeats": bson.M{"$each": seats}},
		"$inc":      bson.M{"classes.$[c].availableSeats": -len(seats)},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"rt.id": routeID},
			bson.M{"c.className": className},
		},
	})

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to reserve flight seats: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrUnavailable
	}
	return nil
}

// ReleaseFlightSeats undoes both sides of a flight reservation.
func (r *MongoFlightRepo) ReleaseFlightSeats(ctx context.Context, flightID, routeID, className string, seats []string) error {
	filter := bson.M{
		"id":                flightID,
		"routes.id":         routeID,
		"classes.className": className,
	}
	update := bson.M{
		"$pullAll": bson.M{"routes.$[rt].bookedSeats": seats},
		"$inc":     bson.M{"classes.$[c].availableSeats": len(seats)},
		"$set":     bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"rt.id": routeID},
			bson.M{"c.className": className},
		},
	})

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to release flight seats: %w", err)
	}
	return nil
}
