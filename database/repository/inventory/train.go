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

// MongoTrainRepo implements TrainRepository using MongoDB.
type MongoTrainRepo struct {
	coll *mongo.Collection
}

// NewMongoTrainRepo creates a new TrainRepository backed by the trains collection.
func NewMongoTrainRepo() TrainRepository {
	coll := database.DB().Collection("trains")
	repo := &MongoTrainRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "trainNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create train indexes: %v\n", err)
	}
	return repo
}

func (r *MongoTrainRepo) Create(train *models.Train) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	train.CreatedAt = now
	train.UpdatedAt = now
	if train.Journeys == nil {
		train.Journeys = []models.Journey{}
	}

	if _, err := r.coll.InsertOne(ctx, train); err != nil {
		return err
	}
	return nil
}

func (r *MongoTrainRepo) GetByID(id string) (*models.Train, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var train models.Train
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&train)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch train %s: %w", id, err)
	}
	return &train, nil
}

func (r *MongoTrainRepo) List(activeOnly bool) ([]models.Train, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, activeFilter(activeOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to list trains: %w", err)
	}
	var trains []models.Train
	if err := cursor.All(ctx, &trains); err != nil {
		return nil, fmt.Errorf("failed to decode trains: %w", err)
	}
	return trains, nil
}

// EnsureJourney pushes a journey for the date only while no journey with
// that date exists. Losing the race to another request is fine: the journey
// is there either way.
func (r *MongoTrainRepo) EnsureJourney(ctx context.Context, trainID string, date time.Time, capacity int) error {
	date = NormalizeJourneyDate(date)
	filter := bson.M{
		"id":            trainID,
		"journeys.date": bson.M{"$ne": date},
	}
	journey := models.Journey{
		Date:                date,
		TotalAvailableSeats: capacity,
		BookedSeats:         []string{},
		CreatedAt:           time.Now(),
	}
	update := bson.M{
		"$push": bson.M{"journeys": journey},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to ensure journey: %w", err)
	}
	return nil
}

// ReserveJourneySeats appends seat codes to the journey matching the date,
// guarded on non-membership and the journey's totalAvailableSeats.
func (r *MongoTrainRepo) ReserveJourneySeats(ctx context.Context, trainID string, date time.Time, seats []string) error {
	date = NormalizeJourneyDate(date)
	filter := bson.M{
		"id": trainID,
		"journeys": bson.M{"$elemMatch": bson.M{
			"date":        date,
			"bookedSeats": bson.M{"$nin": seats},
		}},
		"$expr": seatCapacityExpr("journeys", "date", date, "$$u.totalAvailableSeats", len(seats)),
	}
	update := bson.M{
		"$addToSet": bson.M{"journeys.$[j].bookedSeats": bson.M{"$each": seats}},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"j.date": date}},
	})

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to reserve train seats: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrUnavailable
	}
	return nil
}

// ReleaseJourneySeats removes the seat codes from the journey's booked set.
func (r *MongoTrainRepo) ReleaseJourneySeats(ctx context.Context, trainID string, date time.Time, seats []string) error {
	date = NormalizeJourneyDate(date)
	filter := bson.M{"id": trainID, "journeys.date": date}
	update := bson.M{
		"$pullAll": bson.M{"journeys.$[j].bookedSeats": seats},
		"$set":     bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"j.date": date}},
	})

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to release train seats: %w", err)
	}
	return nil
}
