package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// NextSequence allocates the next integer id for the named collection using
// an atomically incremented counter document. The store, not the caller, is
// the only writer of record ids.
func NextSequence(ctx context.Context, db *mongo.Database, name string) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}

	// The first concurrent upsert of a counter document can race and lose
	// with a duplicate key error; retrying resolves it against the now
	// existing document.
	operation := func() error {
		opts := options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After)
		return db.Collection(countersCollection).FindOneAndUpdate(
			ctx,
			bson.M{"_id": name},
			bson.M{"$inc": bson.M{"seq": 1}},
			opts,
		).Decode(&counter)
	}

	if err := Try(operation); err != nil {
		return 0, fmt.Errorf("failed to allocate next id for %q: %w", name, err)
	}
	return counter.Seq, nil
}
