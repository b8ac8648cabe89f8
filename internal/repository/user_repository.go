package repository

import (
	"context"

	"daily-news/internal/domain/entity"
)

// UserRepository is the store port for the users collection.
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	ListPage(ctx context.Context, offset, limit int) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Create inserts the user and returns its id.
	// It returns ErrDuplicateKey when the store rejects a second user with the same email.
	Create(ctx context.Context, user *entity.User) (string, error)
	UpdateProfile(ctx context.Context, email string, profile entity.Profile) (UpdateResult, error)
	UpdateSubscription(ctx context.Context, email string, sub entity.Subscription) (UpdateResult, error)
	SetRole(ctx context.Context, id string, role entity.Role) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
