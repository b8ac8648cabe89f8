package repository

import (
	"context"

	"daily-news/internal/domain/entity"
)

// ArticleRepository is the store port for the articles collection.
// Lookups that find nothing return (nil, nil); callers decide whether that is an error.
type ArticleRepository interface {
	// Find returns the articles matching filter in natural store order.
	// A zero filter matches every article.
	Find(ctx context.Context, filter ArticleFilter) ([]*entity.Article, error)
	// FindPage returns at most limit articles after skipping offset, in natural store order.
	FindPage(ctx context.Context, filter ArticleFilter, offset, limit int) ([]*entity.Article, error)
	// Count returns the number of articles matching filter.
	Count(ctx context.Context, filter ArticleFilter) (int64, error)
	// FindMostVisited returns up to limit articles ordered by visit count, highest first.
	FindMostVisited(ctx context.Context, limit int) ([]*entity.Article, error)
	Get(ctx context.Context, id string) (*entity.Article, error)
	// Create stores the article and returns the store-assigned id.
	Create(ctx context.Context, article *entity.Article) (string, error)
	// IncrementVisits atomically adds one to the visit counter.
	IncrementVisits(ctx context.Context, id string) (UpdateResult, error)
	// ReplaceContent overwrites the editable content, inserting a new article under id when none exists.
	ReplaceContent(ctx context.Context, id string, content entity.ArticleContent) (UpdateResult, error)
	// UpdateFields applies only the non-nil fields of update.
	UpdateFields(ctx context.Context, id string, update ArticleUpdate) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}

// ArticleUpdate lists the moderation fields that can be patched. Nil fields are left untouched.
type ArticleUpdate struct {
	Status        *entity.ArticleStatus
	DeclineReason *string
	IsPremium     *bool
}
