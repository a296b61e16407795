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

// MongoBusRepo implements BusRepository using MongoDB.
type MongoBusRepo struct {
	coll *mongo.Collection
}

// NewMongoBusRepo creates a new BusRepository backed by the buses collection.
func NewMongoBusRepo() BusRepository {
	coll := database.DB().Collection("buses")
	repo := &MongoBusRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "busNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "routes.source.city", Value: 1}}},
		{Keys: bson.D{{Key: "routes.destination.city", Value: 1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create bus indexes: %v\n", err)
	}
	return repo
}

func (r *MongoBusRepo) Create(bus *models.Bus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	bus.CreatedAt = now
	bus.UpdatedAt = now
	for i := range bus.Routes {
		if bus.Routes[i].BookedSeats == nil {
			bus.Routes[i].BookedSeats = []string{}
		}
		if bus.Routes[i].CreatedAt.IsZero() {
			bus.Routes[i].CreatedAt = now
		}
	}

	if _, err := r.coll.InsertOne(ctx, bus); err != nil {
		return err
	}
	return nil
}

func (r *MongoBusRepo) GetByID(id string) (*models.Bus, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var bus models.Bus
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&bus)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bus %s: %w", id, err)
	}
	return &bus, nil
}

// List returns buses, optionally narrowed by route source/destination city.
func (r *MongoBusRepo) List(activeOnly bool, sourceCity, destinationCity string) ([]models.Bus, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := activeFilter(activeOnly)
	if sourceCity != "" {
		filter["routes.source.city"] = sourceCity
	}
	if destinationCity != "" {
		filter["routes.destination.city"] = destinationCity
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list buses: %w", err)
	}
	var buses []models.Bus
	if err := cursor.All(ctx, &buses); err != nil {
		return nil, fmt.Errorf("failed to decode buses: %w", err)
	}
	return buses, nil
}

// ReserveRouteSeats appends seat codes to the route's booked set. Capacity is
// the parent document's totalSeats, not per-route.
func (r *MongoBusRepo) ReserveRouteSeats(ctx context.Context, busID, routeID string, seats []string) error {
	filter := bson.M{
		"id": busID,
		"routes": bson.M{"$elemMatch": bson.M{
			"id":          routeID,
			"bookedSeats": bson.M{"$nin": seats},
		}},
		"$expr": seatCapacityExpr("routes", "id", routeID, "$totalSeats", len(seats)),
	}
	update := bson.M{
		"$addToSet": bson.M{"routes.$[rt].bookedSeats": bson.M{"$each": seats}},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"rt.id": routeID}},
	})

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to reserve bus seats: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrUnavailable
	}
	return nil
}

// ReleaseRouteSeats removes the seat codes from the route's booked set.
func (r *MongoBusRepo) ReleaseRouteSeats(ctx context.Context, busID, routeID string, seats []string) error {
	filter := bson.M{"id": busID, "routes.id": routeID}
	update := bson.M{
		"$pullAll": bson.M{"routes.$[rt].bookedSeats": seats},
		"$set":     bson.M{"updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"rt.id": routeID}},
	})

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to release bus seats: %w", err)
	}
	return nil
}
