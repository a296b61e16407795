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

// MongoMovieRepo implements MovieRepository using MongoDB.
type MongoMovieRepo struct {
	coll *mongo.Collection
}

// NewMongoMovieRepo creates a new MovieRepository backed by the movies collection.
func NewMongoMovieRepo() MovieRepository {
	coll := database.DB().Collection("movies")
	repo := &MongoMovieRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create movie indexes: %v\n", err)
	}
	return repo
}

func (r *MongoMovieRepo) Create(movie *models.Movie) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now
	for i := range movie.Shows {
		if movie.Shows[i].BookedSeats == nil {
			movie.Shows[i].BookedSeats = []string{}
		}
		if movie.Shows[i].CreatedAt.IsZero() {
			movie.Shows[i].CreatedAt = now
		}
	}

	if _, err := r.coll.InsertOne(ctx, movie); err != nil {
		return err
	}
	return nil
}

func (r *MongoMovieRepo) GetByID(id string) (*models.Movie, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var movie models.Movie
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie %s: %w", id, err)
	}
	return &movie, nil
}

func (r *MongoMovieRepo) List(activeOnly bool) ([]models.Movie, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, activeFilter(activeOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	return movies, nil
}

// ReserveShowSeats is the single atomic commit point for movie seats. The
// filter only matches while none of the requested codes is booked and the
// show still has room, so of two racing requests for the same seat exactly
// one update matches.
func (r *MongoMovieRepo) ReserveShowSeats(ctx context.Context, movieID, showID string, seats []string) error {
	filter := bson.M{
		"id": movieID,
		"shows": bson.M{"$elemMatch": bson.M{
			"id":          showID,
			"bookedSeats": bson.M{"$nin": seats},
		}},
		"$expr": seatCapacityExpr("shows", "id", showID, "$$u.totalSeats", len(seats)),
	}
	update := bson.M{
		"$addToSet": bson.M{"shows.$[s].bookedSeats": bson.M{"$each": seats}},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"s.id": showID}},
	})

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to reserve show seats: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrUnavailable
	}
	return nil
}

// ReleaseShowSeats removes the seat codes from the show's booked set.
func (r *MongoMovieRepo) ReleaseShowSeats(ctx context.Context, movieID, showID string, seats []string) error {
	filter := bson.M{"id": movieID, "shows.id": showID}
	update := bson.M{
		"$pullAll": bson.M{"shows.$[s].bookedSeats": seats},
		"$set":     bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"s.id": showID}},
	})

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to release show seats: %w", err)
	}
	return nil
}
