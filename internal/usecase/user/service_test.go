package user_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-news/internal/common/pagination"
	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
	userUC "daily-news/internal/usecase/user"
)

/* ───────── in-memory UserRepository ───────── */

type stubRepo struct {
	mu     sync.Mutex
	users  []*entity.User
	calls  int
	err    error
	unique bool // reject duplicate emails like the store index does
	blind  bool // GetByEmail never finds anything, simulating a concurrent signup
}

func (s *stubRepo) begin() error {
	s.mu.Lock()
	s.calls++
	return s.err
}

func (s *stubRepo) find(pred func(*entity.User) bool) *entity.User {
	for _, u := range s.users {
		if pred(u) {
			return u
		}
	}
	return nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.User, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	return append([]*entity.User(nil), s.users...), nil
}

func (s *stubRepo) ListPage(_ context.Context, offset, limit int) ([]*entity.User, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	if offset >= len(s.users) {
		return []*entity.User{}, nil
	}
	end := min(offset+limit, len(s.users))
	return append([]*entity.User(nil), s.users[offset:end]...), nil
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return 0, err
	}
	return int64(len(s.users)), nil
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.User, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	return s.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (s *stubRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	if s.blind {
		return nil, nil
	}
	return s.find(func(u *entity.User) bool { return u.Email == email }), nil
}

func (s *stubRepo) Create(_ context.Context, u *entity.User) (string, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return "", err
	}
	if s.unique && s.find(func(x *entity.User) bool { return x.Email == u.Email }) != nil {
		return "", repository.ErrDuplicateKey
	}
	cp := *u
	cp.ID = entity.NewID()
	s.users = append(s.users, &cp)
	return cp.ID, nil
}

func (s *stubRepo) update(match func(*entity.User) bool, apply func(*entity.User) bool) (repository.UpdateResult, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return repository.UpdateResult{}, err
	}
	u := s.find(match)
	if u == nil {
		return repository.UpdateResult{}, nil
	}
	res := repository.UpdateResult{Matched: 1}
	if apply(u) {
		res.Modified = 1
	}
	return res, nil
}

func (s *stubRepo) UpdateProfile(_ context.Context, email string, p entity.Profile) (repository.UpdateResult, error) {
	return s.update(func(u *entity.User) bool { return u.Email == email }, func(u *entity.User) bool {
		changed := u.Name != p.Name || u.PhotoURL != p.PhotoURL
		u.Name, u.PhotoURL = p.Name, p.PhotoURL
		return changed
	})
}

func (s *stubRepo) UpdateSubscription(_ context.Context, email string, sub entity.Subscription) (repository.UpdateResult, error) {
	return s.update(func(u *entity.User) bool { return u.Email == email }, func(u *entity.User) bool {
		changed := u.MembershipStatus != sub.Status || !sameTime(u.MembershipTaken, sub.Taken)
		u.MembershipStatus, u.MembershipTaken = sub.Status, sub.Taken
		return changed
	})
}

func (s *stubRepo) SetRole(_ context.Context, id string, role entity.Role) (repository.UpdateResult, error) {
	return s.update(func(u *entity.User) bool { return u.ID == id }, func(u *entity.User) bool {
		changed := u.Role != role
		u.Role = role
		return changed
	})
}

func (s *stubRepo) Delete(_ context.Context, id string) (repository.DeleteResult, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return repository.DeleteResult{}, err
	}
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return repository.DeleteResult{Deleted: 1}, nil
		}
	}
	return repository.DeleteResult{}, nil
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func seed(repo *stubRepo, users ...entity.User) {
	for i := range users {
		u := users[i]
		if u.ID == "" {
			u.ID = entity.NewID()
		}
		repo.users = append(repo.users, &u)
	}
}

/* ───────── tests ───────── */

func TestService_CreateIfAbsent(t *testing.T) {
	repo := &stubRepo{}
	svc := userUC.Service{Repo: repo}
	ctx := context.Background()

	first, err := svc.CreateIfAbsent(ctx, userUC.CreateInput{Email: "a@x.com", Name: "A"})
	require.NoError(t, err)
	assert.True(t, first.Created)
	require.NoError(t, entity.ValidateID(first.ID))

	second, err := svc.CreateIfAbsent(ctx, userUC.CreateInput{Email: "a@x.com", Name: "Again"})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Empty(t, second.ID)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.Equal(t, "A", stored.Name)
	assert.Equal(t, entity.RoleNone, stored.Role)
	assert.Equal(t, entity.MembershipNone, stored.MembershipStatus)
	assert.Nil(t, stored.MembershipTaken)
}

func TestService_CreateIfAbsent_RaceResolvedByUniqueIndex(t *testing.T) {
	repo := &stubRepo{unique: true, blind: true}
	svc := userUC.Service{Repo: repo}

	_, err := svc.CreateIfAbsent(context.Background(), userUC.CreateInput{Email: "a@x.com"})
	require.NoError(t, err)

	res, err := svc.CreateIfAbsent(context.Background(), userUC.CreateInput{Email: "a@x.com"})
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Empty(t, res.ID)
	assert.Len(t, repo.users, 1)
}

func TestService_CreateIfAbsent_InvalidEmail(t *testing.T) {
	repo := &stubRepo{}
	svc := userUC.Service{Repo: repo}

	_, err := svc.CreateIfAbsent(context.Background(), userUC.CreateInput{Email: "not-an-email"})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	assert.Zero(t, repo.calls)
}

func TestService_CreateIfAbsent_StoreError(t *testing.T) {
	repo := &stubRepo{err: errors.New("boom")}
	svc := userUC.Service{Repo: repo}

	_, err := svc.CreateIfAbsent(context.Background(), userUC.CreateInput{Email: "a@x.com"})
	assert.ErrorIs(t, err, repo.err)
}

func TestService_ListPaged(t *testing.T) {
	repo := &stubRepo{}
	for i := 0; i < 12; i++ {
		seed(repo, entity.User{Email: "u@x.com"})
	}
	svc := userUC.Service{Repo: repo}

	page, err := svc.ListPaged(context.Background(), pagination.Params{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 3, page.TotalPages())
	assert.Equal(t, repo.users[10].ID, page.Items[0].ID)

	_, err = svc.ListPaged(context.Background(), pagination.Params{Page: 0, Limit: 5})
	assert.ErrorIs(t, err, userUC.ErrInvalidPagination)
}

func TestService_GetAndDelete(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, entity.User{Email: "a@x.com"})
	id := repo.users[0].ID
	svc := userUC.Service{Repo: repo}

	u, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = svc.Get(context.Background(), entity.NewID())
	assert.ErrorIs(t, err, userUC.ErrUserNotFound)

	_, err = svc.Get(context.Background(), "short")
	assert.ErrorIs(t, err, userUC.ErrInvalidUserID)

	res, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Deleted)

	res, err = svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Deleted)
}

func TestService_RoleAndMembershipChecks(t *testing.T) {
	repo := &stubRepo{}
	seed(repo,
		entity.User{Email: "admin@x.com", Role: entity.RoleAdmin},
		entity.User{Email: "premium@x.com", MembershipStatus: entity.MembershipPremium},
		entity.User{Email: "plain@x.com"},
	)
	svc := userUC.Service{Repo: repo}
	ctx := context.Background()

	tests := []struct {
		email       string
		wantAdmin   bool
		wantPremium bool
	}{
		{"admin@x.com", true, false},
		{"premium@x.com", false, true},
		{"plain@x.com", false, false},
		{"missing@x.com", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			admin, err := svc.IsAdmin(ctx, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdmin, admin)

			premium, err := svc.IsPremiumMember(ctx, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPremium, premium)
		})
	}
}

func TestService_UpdateProfile(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, entity.User{Email: "a@x.com", Name: "A", PhotoURL: "p.png"})
	svc := userUC.Service{Repo: repo}
	ctx := context.Background()

	rep, err := svc.UpdateProfile(ctx, "a@x.com", entity.Profile{Name: "A", PhotoURL: "p.png"})
	require.NoError(t, err)
	assert.Equal(t, userUC.NoChanges, rep.Outcome)

	rep, err = svc.UpdateProfile(ctx, "a@x.com", entity.Profile{Name: "B", PhotoURL: "p.png"})
	require.NoError(t, err)
	assert.Equal(t, userUC.Updated, rep.Outcome)
	assert.Equal(t, int64(1), rep.Modified)
	assert.Equal(t, "B", repo.users[0].Name)

	_, err = svc.UpdateProfile(ctx, "missing@x.com", entity.Profile{Name: "C"})
	assert.ErrorIs(t, err, userUC.ErrUserNotFound)

	_, err = svc.UpdateProfile(ctx, "bad", entity.Profile{Name: "C"})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestService_UpdateSubscription(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, entity.User{Email: "a@x.com"})
	svc := userUC.Service{Repo: repo}
	ctx := context.Background()
	taken := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rep, err := svc.UpdateSubscription(ctx, "a@x.com", userUC.SubscriptionInput{Status: "premium", Taken: &taken})
	require.NoError(t, err)
	assert.Equal(t, userUC.Updated, rep.Outcome)
	assert.Equal(t, entity.MembershipPremium, repo.users[0].MembershipStatus)

	rep, err = svc.UpdateSubscription(ctx, "a@x.com", userUC.SubscriptionInput{Status: "premium", Taken: &taken})
	require.NoError(t, err)
	assert.Equal(t, userUC.NoChanges, rep.Outcome)

	_, err = svc.UpdateSubscription(ctx, "missing@x.com", userUC.SubscriptionInput{Status: "premium"})
	assert.ErrorIs(t, err, userUC.ErrUserNotFound)

	_, err = svc.UpdateSubscription(ctx, "a@x.com", userUC.SubscriptionInput{Status: "gold"})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestService_PromoteToAdmin(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, entity.User{Email: "a@x.com"})
	id := repo.users[0].ID
	svc := userUC.Service{Repo: repo}

	res, err := svc.PromoteToAdmin(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Modified)
	assert.True(t, repo.users[0].IsAdmin())

	res, err = svc.PromoteToAdmin(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Modified)

	_, err = svc.PromoteToAdmin(context.Background(), entity.NewID())
	assert.ErrorIs(t, err, userUC.ErrUserNotFound)

	_, err = svc.PromoteToAdmin(context.Background(), "x")
	assert.ErrorIs(t, err, userUC.ErrInvalidUserID)
}
