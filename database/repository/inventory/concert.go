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

// MongoConcertRepo implements ConcertRepository using MongoDB.
type MongoConcertRepo struct {
	coll *mongo.Collection
}

// NewMongoConcertRepo creates a new ConcertRepository backed by the concerts collection.
func NewMongoConcertRepo() ConcertRepository {
	coll := database.DB().Collection("concerts")
	repo := &MongoConcertRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create concert indexes: %v\n", err)
	}
	return repo
}

func (r *MongoConcertRepo) Create(concert *models.Concert) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	concert.CreatedAt = now
	concert.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, concert); err != nil {
		return err
	}
	return nil
}

func (r *MongoConcertRepo) GetByID(id string) (*models.Concert, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var concert models.Concert
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&concert)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch concert %s: %w", id, err)
	}
	return &concert, nil
}

func (r *MongoConcertRepo) List(activeOnly bool) ([]models.Concert, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, activeFilter(activeOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to list concerts: %w", err)
	}
	var concerts []models.Concert
	if err := cursor.All(ctx, &concerts); err != nil {
		return nil, fmt.Errorf("failed to decode concerts: %w", err)
	}
	return concerts, nil
}

// ReserveCategorySeats bumps the category's booked counter by count. The
// filter caps the pre-increment counter at maxBooked (totalSeats - count) so
// the counter can never pass totalSeats, no matter how requests interleave.
func (r *MongoConcertRepo) ReserveCategorySeats(ctx context.Context, concertID, category string, count, maxBooked int) error {
	filter := bson.M{
		"id": concertID,
		"ticketCategories": bson.M{"$elemMatch": bson.M{
			"name":        category,
			"bookedSeats": bson.M{"$lte": maxBooked},
		}},
	}
	update := bson.M{
		"$inc": bson.M{"ticketCategories.$[c].bookedSeats": count},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"c.name": category}},
	})

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to reserve concert seats: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrUnavailable
	}
	return nil
}

// ReleaseCategorySeats decrements the category counter, floored at the
// current count so a double release cannot drive it negative.
func (r *MongoConcertRepo) ReleaseCategorySeats(ctx context.Context, concertID, category string, count int) error {
	filter := bson.M{
		"id": concertID,
		"ticketCategories": bson.M{"$elemMatch": bson.M{
			"name":        category,
			"bookedSeats": bson.M{"$gte": count},
		}},
	}
	update := bson.M{
		"$inc": bson.M{"ticketCategories.$[c].bookedSeats": -count},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"c.name": category}},
	})

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to release concert seats: %w", err)
	}
	return nil
}
