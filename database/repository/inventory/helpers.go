package inventoryRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// seatCapacityExpr builds a $expr clause asserting that the sub-document of
// arrayField whose idField equals idValue can absorb `requested` more seat
// codes. capacity is an aggregation expression, e.g. "$$u.totalSeats" for a
// per-unit limit or "$totalSeats" for a parent-level one.
func seatCapacityExpr(arrayField, idField string, idValue interface{}, capacity interface{}, requested int) bson.M {
	return bson.M{
		"$anyElementTrue": bson.M{
			"$map": bson.M{
				"input": "$" + arrayField,
				"as":    "u",
				"in": bson.M{
					"$and": bson.A{
						bson.M{"$eq": bson.A{"$$u." + idField, idValue}},
						bson.M{"$lte": bson.A{
							bson.M{"$add": bson.A{
								bson.M{"$size": bson.M{"$ifNull": bson.A{"$$u.bookedSeats", bson.A{}}}},
								requested,
							}},
							capacity,
						}},
					},
				},
			},
		},
	}
}

// activeFilter narrows a catalog query to active documents when requested.
func activeFilter(activeOnly bool) bson.M {
	if activeOnly {
		return bson.M{"isActive": true}
	}
	return bson.M{}
}
