package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"daily-news/internal/common/pagination"
	"daily-news/internal/domain/entity"
	"daily-news/internal/observability/metrics"
	"daily-news/internal/repository"
	"daily-news/internal/resilience/circuitbreaker"
)

// CreateInput carries the registration fields accepted from clients.
// Role and membership are never taken from the caller.
type CreateInput struct {
	Email    string
	Name     string
	PhotoURL string
}

// CreateResult reports the outcome of CreateIfAbsent.
// ID is empty and Created is false when the email was already registered.
type CreateResult struct {
	ID      string
	Created bool
}

// SubscriptionInput is a membership change written by the subscription flow.
type SubscriptionInput struct {
	Status string
	Taken  *time.Time
}

// UpdateOutcome distinguishes a write that changed the user from a no-op.
type UpdateOutcome string

const (
	Updated   UpdateOutcome = "updated"
	NoChanges UpdateOutcome = "no_changes"
)

// UpdateReport is returned by profile and subscription updates.
type UpdateReport struct {
	Outcome  UpdateOutcome
	Modified int64
}

// Service provides user management use cases.
type Service struct {
	Repo  repository.UserRepository
	Guard circuitbreaker.Guard
}

// CreateIfAbsent registers a user unless the email is already taken.
//
// The lookup and the insert are separate store calls. Two concurrent signups
// for the same email can both pass the lookup; the store's unique email index
// then rejects the second insert, which is reported as "already exists".
func (s *Service) CreateIfAbsent(ctx context.Context, in CreateInput) (CreateResult, error) {
	email := strings.TrimSpace(in.Email)
	u := &entity.User{
		Email:            email,
		Name:             in.Name,
		PhotoURL:         in.PhotoURL,
		Role:             entity.RoleNone,
		MembershipStatus: entity.MembershipNone,
		MembershipTaken:  nil,
	}
	if err := u.Validate(); err != nil {
		return CreateResult{}, err
	}

	existing, err := s.getByEmail(ctx, email)
	if err != nil {
		return CreateResult{}, fmt.Errorf("create user: %w", err)
	}
	if existing != nil {
		metrics.RecordUserSignup(false)
		return CreateResult{}, nil
	}

	id, err := circuitbreaker.Call(ctx, s.Guard, "user.create", func(ctx context.Context) (string, error) {
		return s.Repo.Create(ctx, u)
	})
	if errors.Is(err, repository.ErrDuplicateKey) {
		metrics.RecordUserSignup(false)
		return CreateResult{}, nil
	}
	if err != nil {
		return CreateResult{}, fmt.Errorf("create user: %w", err)
	}
	metrics.RecordUserSignup(true)
	return CreateResult{ID: id, Created: true}, nil
}

// List retrieves all users.
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := circuitbreaker.Call(ctx, s.Guard, "user.list", s.Repo.List)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListPaged returns one page of users and the total number of users.
func (s *Service) ListPaged(ctx context.Context, params pagination.Params) (*pagination.Page[*entity.User], error) {
	if params.Page < 1 || params.Limit < 1 {
		return nil, ErrInvalidPagination
	}

	var (
		users []*entity.User
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = circuitbreaker.Call(gctx, s.Guard, "user.list_page", func(ctx context.Context) ([]*entity.User, error) {
			return s.Repo.ListPage(ctx, params.Offset(), params.Limit)
		})
		if err != nil {
			return fmt.Errorf("list users page: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = circuitbreaker.Call(gctx, s.Guard, "user.count", s.Repo.Count)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &pagination.Page[*entity.User]{Items: users, Total: total, Params: params}, nil
}

// Get retrieves a user by id.
func (s *Service) Get(ctx context.Context, id string) (*entity.User, error) {
	if err := entity.ValidateID(id); err != nil {
		return nil, ErrInvalidUserID
	}

	u, err := circuitbreaker.Call(ctx, s.Guard, "user.get", func(ctx context.Context) (*entity.User, error) {
		return s.Repo.Get(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Delete removes a user. Deleting a missing user reports zero deletions.
func (s *Service) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.DeleteResult{}, ErrInvalidUserID
	}

	res, err := circuitbreaker.Call(ctx, s.Guard, "user.delete", func(ctx context.Context) (repository.DeleteResult, error) {
		return s.Repo.Delete(ctx, id)
	})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("delete user: %w", err)
	}
	return res, nil
}

// IsAdmin reports whether the user registered with email holds the admin role.
// An unknown email is not an admin.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.getByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	return u.IsAdmin(), nil
}

// IsPremiumMember reports whether the user registered with email has a premium membership.
func (s *Service) IsPremiumMember(ctx context.Context, email string) (bool, error) {
	u, err := s.getByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return u.IsPremiumMember(), nil
}

// UpdateProfile sets the name and photo of the user registered with email.
func (s *Service) UpdateProfile(ctx context.Context, email string, profile entity.Profile) (UpdateReport, error) {
	if err := entity.ValidateEmail(email); err != nil {
		return UpdateReport{}, err
	}

	res, err := circuitbreaker.Call(ctx, s.Guard, "user.update_profile", func(ctx context.Context) (repository.UpdateResult, error) {
		return s.Repo.UpdateProfile(ctx, email, profile)
	})
	if err != nil {
		return UpdateReport{}, fmt.Errorf("update profile: %w", err)
	}
	return report(res)
}

// UpdateSubscription writes the membership fields of the user registered with email.
func (s *Service) UpdateSubscription(ctx context.Context, email string, in SubscriptionInput) (UpdateReport, error) {
	if err := entity.ValidateEmail(email); err != nil {
		return UpdateReport{}, err
	}
	status, err := entity.ParseMembershipStatus(in.Status)
	if err != nil {
		return UpdateReport{}, err
	}

	sub := entity.Subscription{Status: status, Taken: in.Taken}
	res, err := circuitbreaker.Call(ctx, s.Guard, "user.update_subscription", func(ctx context.Context) (repository.UpdateResult, error) {
		return s.Repo.UpdateSubscription(ctx, email, sub)
	})
	if err != nil {
		return UpdateReport{}, fmt.Errorf("update subscription: %w", err)
	}
	return report(res)
}

// PromoteToAdmin gives the user the admin role. There is no demotion.
func (s *Service) PromoteToAdmin(ctx context.Context, id string) (repository.UpdateResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.UpdateResult{}, ErrInvalidUserID
	}

	res, err := circuitbreaker.Call(ctx, s.Guard, "user.set_role", func(ctx context.Context) (repository.UpdateResult, error) {
		return s.Repo.SetRole(ctx, id, entity.RoleAdmin)
	})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("promote user: %w", err)
	}
	if res.Matched == 0 {
		return res, ErrUserNotFound
	}
	return res, nil
}

func (s *Service) getByEmail(ctx context.Context, email string) (*entity.User, error) {
	return circuitbreaker.Call(ctx, s.Guard, "user.get_by_email", func(ctx context.Context) (*entity.User, error) {
		return s.Repo.GetByEmail(ctx, email)
	})
}

func report(res repository.UpdateResult) (UpdateReport, error) {
	switch {
	case res.Matched == 0:
		return UpdateReport{}, ErrUserNotFound
	case res.Modified == 0:
		return UpdateReport{Outcome: NoChanges}, nil
	}
	return UpdateReport{Outcome: Updated, Modified: res.Modified}, nil
}
