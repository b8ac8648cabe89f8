package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

type PublisherRepo struct {
	coll *mongo.Collection
}

func NewPublisherRepo(db *mongo.Database) repository.PublisherRepository {
	return &PublisherRepo{coll: db.Collection(PublishersCollection)}
}

func (repo *PublisherRepo) List(ctx context.Context) ([]*entity.Publisher, error) {
	cur, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	var docs []publisherDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	out := make([]*entity.Publisher, 0, len(docs))
	for _, d := range docs {
		out = append(out, &entity.Publisher{ID: d.ID.Hex(), Name: d.Name, Logo: d.Logo})
	}
	return out, nil
}

func (repo *PublisherRepo) Create(ctx context.Context, p *entity.Publisher) (string, error) {
	res, err := repo.coll.InsertOne(ctx, publisherDoc{Name: p.Name, Logo: p.Logo})
	if err != nil {
		return "", translateWriteError("Create", err)
	}
	return insertedHex(res.InsertedID), nil
}

type TestimonialRepo struct {
	coll *mongo.Collection
}

func NewTestimonialRepo(db *mongo.Database) repository.TestimonialRepository {
	return &TestimonialRepo{coll: db.Collection(TestimonialsCollection)}
}

func (repo *TestimonialRepo) List(ctx context.Context) ([]*entity.Testimonial, error) {
	cur, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	var docs []testimonialDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	out := make([]*entity.Testimonial, 0, len(docs))
	for _, d := range docs {
		out = append(out, &entity.Testimonial{ID: d.ID.Hex(), Name: d.Name, Text: d.Text})
	}
	return out, nil
}

func (repo *TestimonialRepo) Create(ctx context.Context, t *entity.Testimonial) (string, error) {
	res, err := repo.coll.InsertOne(ctx, testimonialDoc{Name: t.Name, Text: t.Text})
	if err != nil {
		return "", translateWriteError("Create", err)
	}
	return insertedHex(res.InsertedID), nil
}
