package mongodb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"daily-news/internal/domain/entity"
	mdb "daily-news/internal/infra/adapter/persistence/mongodb"
)

func TestPublisherRepo(t *testing.T) {
	mt := newMock(t)

	mt.Run("list", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.publishers", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "Daily Star"}, {Key: "logo", Value: "l.png"}}))

		got, err := mdb.NewPublisherRepo(mt.DB).List(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []*entity.Publisher{{ID: id.Hex(), Name: "Daily Star", Logo: "l.png"}}, got)
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := mdb.NewPublisherRepo(mt.DB).Create(context.Background(), &entity.Publisher{Name: "P"})
		require.NoError(mt, err)
		assert.NoError(mt, entity.ValidateID(id))
	})
}

func TestTestimonialRepo(t *testing.T) {
	mt := newMock(t)

	mt.Run("list empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.testimonials", mtest.FirstBatch))

		got, err := mdb.NewTestimonialRepo(mt.DB).List(context.Background())
		require.NoError(mt, err)
		assert.Empty(mt, got)
		assert.NotNil(mt, got)
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := mdb.NewTestimonialRepo(mt.DB).Create(context.Background(), &entity.Testimonial{Text: "great"})
		require.NoError(mt, err)
		assert.Len(mt, id, entity.IDLength)
	})
}
