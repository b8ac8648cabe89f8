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

type ArticleRepo struct {
	coll *mongo.Collection
}

func NewArticleRepo(db *mongo.Database) repository.ArticleRepository {
	return &ArticleRepo{coll: db.Collection(ArticlesCollection)}
}

func (repo *ArticleRepo) Find(ctx context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	cur, err := repo.coll.Find(ctx, articleFilterDoc(filter))
	if err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}
	return decodeArticles(ctx, cur, "Find")
}

func (repo *ArticleRepo) FindPage(ctx context.Context, filter repository.ArticleFilter, offset, limit int) ([]*entity.Article, error) {
	opts := options.Find().SetSkip(int64(offset)).SetLimit(int64(limit))
	cur, err := repo.coll.Find(ctx, articleFilterDoc(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("FindPage: %w", err)
	}
	return decodeArticles(ctx, cur, "FindPage")
}

func (repo *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	n, err := repo.coll.CountDocuments(ctx, articleFilterDoc(filter))
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (repo *ArticleRepo) FindMostVisited(ctx context.Context, limit int) ([]*entity.Article, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timesVisited", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := repo.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("FindMostVisited: %w", err)
	}
	return decodeArticles(ctx, cur, "FindMostVisited")
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	var doc articleDoc
	err = repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return doc.toEntity(), nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (string, error) {
	res, err := repo.coll.InsertOne(ctx, newArticleDoc(article))
	if err != nil {
		return "", translateWriteError("Create", err)
	}
	return insertedHex(res.InsertedID), nil
}

func (repo *ArticleRepo) IncrementVisits(ctx context.Context, id string) (repository.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("IncrementVisits: %w", err)
	}
	res, err := repo.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "timesVisited", Value: 1}}}},
	)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("IncrementVisits: %w", err)
	}
	return updateResult(res), nil
}

// ReplaceContent upserts by id. A document created this way starts pending with zero visits.
func (repo *ArticleRepo) ReplaceContent(ctx context.Context, id string, content entity.ArticleContent) (repository.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("ReplaceContent: %w", err)
	}
	tags := content.Tags
	if tags == nil {
		tags = []string{}
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "title", Value: content.Title},
			{Key: "image", Value: content.Image},
			{Key: "publisher", Value: content.Publisher},
			{Key: "tags", Value: tags},
			{Key: "description", Value: content.Description},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "status", Value: string(entity.StatusPending)},
			{Key: "isPremium", Value: false},
			{Key: "timesVisited", Value: int64(0)},
		}},
	}
	res, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update,
		options.Update().SetUpsert(true))
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("ReplaceContent: %w", err)
	}
	return updateResult(res), nil
}

func (repo *ArticleRepo) UpdateFields(ctx context.Context, id string, update repository.ArticleUpdate) (repository.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("UpdateFields: %w", err)
	}
	set := bson.D{}
	if update.Status != nil {
		set = append(set, bson.E{Key: "status", Value: string(*update.Status)})
	}
	if update.DeclineReason != nil {
		set = append(set, bson.E{Key: "declineReason", Value: *update.DeclineReason})
	}
	if update.IsPremium != nil {
		set = append(set, bson.E{Key: "isPremium", Value: *update.IsPremium})
	}
	if len(set) == 0 {
		n, err := repo.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: oid}})
		if err != nil {
			return repository.UpdateResult{}, fmt.Errorf("UpdateFields: %w", err)
		}
		return repository.UpdateResult{Matched: n}, nil
	}
	res, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("UpdateFields: %w", err)
	}
	return updateResult(res), nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
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

func decodeArticles(ctx context.Context, cur *mongo.Cursor, op string) ([]*entity.Article, error) {
	defer func() { _ = cur.Close(ctx) }()

	articles := make([]*entity.Article, 0, 32)
	for cur.Next(ctx) {
		var doc articleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: Decode: %w", op, err)
		}
		articles = append(articles, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return articles, nil
}
