package mongodb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

func TestArticleFilterDoc(t *testing.T) {
	tests := []struct {
		name   string
		filter repository.ArticleFilter
		want   bson.D
	}{
		{
			name:   "empty filter matches all",
			filter: repository.NewArticleFilter(),
			want:   bson.D{},
		},
		{
			name:   "author only",
			filter: repository.NewArticleFilter().WithAuthor("a@x.com"),
			want:   bson.D{{Key: "authorEmail", Value: "a@x.com"}},
		},
		{
			name: "search composes conjunctively",
			filter: repository.NewArticleFilter().
				WithStatus(entity.StatusApproved).
				WithTitleContains("go 1.25").
				WithPublisher("Daily Star").
				WithAnyTags([]string{"tech", "go"}),
			want: bson.D{
				{Key: "status", Value: "approved"},
				{Key: "title", Value: primitive.Regex{Pattern: `go 1\.25`, Options: "i"}},
				{Key: "publisher", Value: "Daily Star"},
				{Key: "tags", Value: bson.D{{Key: "$in", Value: []string{"tech", "go"}}}},
			},
		},
		{
			name:   "regex metacharacters are quoted",
			filter: repository.NewArticleFilter().WithTitleContains("a+b (c)"),
			want: bson.D{
				{Key: "title", Value: primitive.Regex{Pattern: `a\+b \(c\)`, Options: "i"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := articleFilterDoc(tt.filter)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
