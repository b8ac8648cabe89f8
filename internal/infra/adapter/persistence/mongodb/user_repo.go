package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) repository.UserRepository {
	return &UserRepo{coll: db.Collection(UsersCollection)}
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	cur, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return decodeUsers(ctx, cur, "List")
}

func (repo *UserRepo) ListPage(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	opts := options.Find().SetSkip(int64(offset)).SetLimit(int64(limit))
	cur, err := repo.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("ListPage: %w", err)
	}
	return decodeUsers(ctx, cur, "ListPage")
}

func (repo *UserRepo) Count(ctx context.Context) (int64, error) {
	n, err := repo.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (repo *UserRepo) Get(ctx context.Context, id string) (*entity.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: oid}}, "Get")
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}}, "GetByEmail")
}

func (repo *UserRepo) findOne(ctx context.Context, filter bson.D, op string) (*entity.User, error) {
	var doc userDoc
	err := repo.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toEntity(), nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) (string, error) {
	res, err := repo.coll.InsertOne(ctx, newUserDoc(user))
	if err != nil {
		return "", translateWriteError("Create", err)
	}
	return insertedHex(res.InsertedID), nil
}

func (repo *UserRepo) UpdateProfile(ctx context.Context, email string, profile entity.Profile) (repository.UpdateResult, error) {
	set := bson.D{
		{Key: "name", Value: profile.Name},
		{Key: "photoURL", Value: profile.PhotoURL},
	}
	return repo.updateByEmail(ctx, email, set, "UpdateProfile")
}

func (repo *UserRepo) UpdateSubscription(ctx context.Context, email string, sub entity.Subscription) (repository.UpdateResult, error) {
	set := bson.D{
		{Key: "membershipStatus", Value: nullable(string(sub.Status))},
		{Key: "membershipTaken", Value: sub.Taken},
	}
	return repo.updateByEmail(ctx, email, set, "UpdateSubscription")
}

func (repo *UserRepo) updateByEmail(ctx context.Context, email string, set bson.D, op string) (repository.UpdateResult, error) {
	res, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("%s: %w", op, err)
	}
	return updateResult(res), nil
}

func (repo *UserRepo) SetRole(ctx context.Context, id string, role entity.Role) (repository.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("SetRole: %w", err)
	}
	res, err := repo.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: nullable(string(role))}}}},
	)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("SetRole: %w", err)
	}
	return updateResult(res), nil
}

func (repo *UserRepo) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("Delete: %w", err)
	}
	res, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("Delete: %w", err)
	}
	return repository.DeleteResult{Deleted: res.DeletedCount}, nil
}

func decodeUsers(ctx context.Context, cur *mongo.Cursor, op string) ([]*entity.User, error) {
	defer func() { _ = cur.Close(ctx) }()

	users := make([]*entity.User, 0, 16)
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: Decode: %w", op, err)
		}
		users = append(users, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}
