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

// MongoCarRepo implements CarRepository using MongoDB.
type MongoCarRepo struct {
	coll *mongo.Collection
}

// NewMongoCarRepo creates a new CarRepository backed by the cars collection.
func NewMongoCarRepo() CarRepository {
	coll := database.DB().Collection("cars")
	repo := &MongoCarRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "registrationNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "currentLocation", Value: "2dsphere"}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create car indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCarRepo) Create(car *models.Car) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now
	if car.Bookings == nil {
		car.Bookings = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, car); err != nil {
		return err
	}
	return nil
}

func (r *MongoCarRepo) GetByID(id string) (*models.Car, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var car models.Car
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&car)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch car %s: %w", id, err)
	}
	return &car, nil
}

func (r *MongoCarRepo) List(activeOnly bool) ([]models.Car, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, activeFilter(activeOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode cars: %w", err)
	}
	return cars, nil
}

// ListNearby returns active, verified cars whose current location lies within
// maxDistanceMeters of the given point, nearest first via the 2dsphere index.
func (r *MongoCarRepo) ListNearby(longitude, latitude, maxDistanceMeters float64) ([]models.Car, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"isActive":   true,
		"isVerified": true,
		"currentLocation": bson.M{"$near": bson.M{
			"$geometry": bson.M{
				"type":        "Point",
				"coordinates": []float64{longitude, latitude},
			},
			"$maxDistance": maxDistanceMeters,
		}},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby cars: %w", err)
	}
	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode nearby cars: %w", err)
	}
	return cars, nil
}

// AppendBooking records a booking reference on the car document.
func (r *MongoCarRepo) AppendBooking(ctx context.Context, carID, bookingDocID string) error {
	update := bson.M{
		"$addToSet": bson.M{"bookings": bookingDocID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": carID}, update)
	if err != nil {
		return fmt.Errorf("failed to append booking to car %s: %w", carID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("car with id %s not found", carID)
	}
	return nil
}
