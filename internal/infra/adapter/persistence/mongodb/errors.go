package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

// objectID converts a hex id into an ObjectID. Use cases validate ids first,
// so a failure here means an adapter was called directly with bad input.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, entity.ErrInvalidID
	}
	return oid, nil
}

func insertedHex(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func updateResult(res *mongo.UpdateResult) repository.UpdateResult {
	out := repository.UpdateResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}
	if res.UpsertedID != nil {
		out.UpsertedID = insertedHex(res.UpsertedID)
	}
	return out
}

func translateWriteError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w: %w", op, repository.ErrDuplicateKey, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
