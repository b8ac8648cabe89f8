// Package memory provides process-local implementations of the repository
// interfaces. It backs STORE_DRIVER=memory for local runs and handler tests and
// mirrors the document store semantics: insertion order, upsert on replace,
// matched/modified counts and a unique email index.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

// Store holds every collection behind one lock.
type Store struct {
	mu           sync.RWMutex
	articles     []*entity.Article
	users        []*entity.User
	publishers   []*entity.Publisher
	testimonials []*entity.Testimonial
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Articles returns the article repository view of s.
func (s *Store) Articles() repository.ArticleRepository { return &ArticleRepo{s: s} }

// Users returns the user repository view of s.
func (s *Store) Users() repository.UserRepository { return &UserRepo{s: s} }

// Publishers returns the publisher repository view of s.
func (s *Store) Publishers() repository.PublisherRepository { return &PublisherRepo{s: s} }

// Testimonials returns the testimonial repository view of s.
func (s *Store) Testimonials() repository.TestimonialRepository { return &TestimonialRepo{s: s} }

// ArticleRepo implements repository.ArticleRepository.
type ArticleRepo struct{ s *Store }

func (r *ArticleRepo) Find(_ context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.matching(filter), nil
}

func (r *ArticleRepo) FindPage(_ context.Context, filter repository.ArticleFilter, offset, limit int) ([]*entity.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return window(r.matching(filter), offset, limit), nil
}

func (r *ArticleRepo) Count(_ context.Context, filter repository.ArticleFilter) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.matching(filter))), nil
}

func (r *ArticleRepo) FindMostVisited(_ context.Context, limit int) ([]*entity.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := r.matching(repository.NewArticleFilter())
	sort.SliceStable(out, func(i, j int) bool { return out[i].TimesVisited > out[j].TimesVisited })
	return window(out, 0, limit), nil
}

func (r *ArticleRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	if err := entity.ValidateID(id); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if a := r.find(id); a != nil {
		return cloneArticle(a), nil
	}
	return nil, nil
}

func (r *ArticleRepo) Create(_ context.Context, article *entity.Article) (string, error) {
	a := cloneArticle(article)
	a.ID = entity.NewID()
	r.s.mu.Lock()
	r.s.articles = append(r.s.articles, a)
	r.s.mu.Unlock()
	return a.ID, nil
}

func (r *ArticleRepo) IncrementVisits(_ context.Context, id string) (repository.UpdateResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.UpdateResult{}, fmt.Errorf("IncrementVisits: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a := r.find(id)
	if a == nil {
		return repository.UpdateResult{}, nil
	}
	a.TimesVisited++
	return repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (r *ArticleRepo) ReplaceContent(_ context.Context, id string, c entity.ArticleContent) (repository.UpdateResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.UpdateResult{}, fmt.Errorf("ReplaceContent: %w", err)
	}
	tags := slices.Clone(c.Tags)
	if tags == nil {
		tags = []string{}
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a := r.find(id)
	if a == nil {
		r.s.articles = append(r.s.articles, &entity.Article{
			ID: id, Title: c.Title, Image: c.Image, Publisher: c.Publisher,
			Tags: tags, Description: c.Description, Status: entity.StatusPending,
		})
		return repository.UpdateResult{UpsertedID: id}, nil
	}

	modified := a.Title != c.Title || a.Image != c.Image || a.Publisher != c.Publisher ||
		a.Description != c.Description || !slices.Equal(a.Tags, tags)
	a.Title, a.Image, a.Publisher, a.Description, a.Tags = c.Title, c.Image, c.Publisher, c.Description, tags
	return repository.UpdateResult{Matched: 1, Modified: boolCount(modified)}, nil
}

func (r *ArticleRepo) UpdateFields(_ context.Context, id string, u repository.ArticleUpdate) (repository.UpdateResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.UpdateResult{}, fmt.Errorf("UpdateFields: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a := r.find(id)
	if a == nil {
		return repository.UpdateResult{}, nil
	}
	before := *a
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.DeclineReason != nil {
		a.DeclineReason = *u.DeclineReason
	}
	if u.IsPremium != nil {
		a.IsPremium = *u.IsPremium
	}
	modified := before.Status != a.Status || before.DeclineReason != a.DeclineReason || before.IsPremium != a.IsPremium
	return repository.UpdateResult{Matched: 1, Modified: boolCount(modified)}, nil
}

func (r *ArticleRepo) Delete(_ context.Context, id string) (repository.DeleteResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.DeleteResult{}, fmt.Errorf("Delete: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	before := len(r.s.articles)
	r.s.articles = slices.DeleteFunc(r.s.articles, func(a *entity.Article) bool { return a.ID == id })
	return repository.DeleteResult{Deleted: int64(before - len(r.s.articles))}, nil
}

func (r *ArticleRepo) find(id string) *entity.Article {
	for _, a := range r.s.articles {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (r *ArticleRepo) matching(filter repository.ArticleFilter) []*entity.Article {
	out := make([]*entity.Article, 0, len(r.s.articles))
	for _, a := range r.s.articles {
		if filter.Matches(a) {
			out = append(out, cloneArticle(a))
		}
	}
	return out
}

// UserRepo implements repository.UserRepository.
type UserRepo struct{ s *Store }

func (r *UserRepo) List(context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneUsers(r.s.users), nil
}

func (r *UserRepo) ListPage(_ context.Context, offset, limit int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return window(cloneUsers(r.s.users), offset, limit), nil
}

func (r *UserRepo) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

func (r *UserRepo) Get(_ context.Context, id string) (*entity.User, error) {
	if err := entity.ValidateID(id); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneUser(r.findBy(func(u *entity.User) bool { return u.ID == id })), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneUser(r.findBy(func(u *entity.User) bool { return u.Email == email })), nil
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.findBy(func(u *entity.User) bool { return u.Email == user.Email }) != nil {
		return "", fmt.Errorf("Create: %w", repository.ErrDuplicateKey)
	}
	u := cloneUser(user)
	u.ID = entity.NewID()
	r.s.users = append(r.s.users, u)
	return u.ID, nil
}

func (r *UserRepo) UpdateProfile(_ context.Context, email string, p entity.Profile) (repository.UpdateResult, error) {
	return r.update(func(u *entity.User) bool { return u.Email == email }, func(u *entity.User) bool {
		changed := u.Name != p.Name || u.PhotoURL != p.PhotoURL
		u.Name, u.PhotoURL = p.Name, p.PhotoURL
		return changed
	}), nil
}

func (r *UserRepo) UpdateSubscription(_ context.Context, email string, sub entity.Subscription) (repository.UpdateResult, error) {
	return r.update(func(u *entity.User) bool { return u.Email == email }, func(u *entity.User) bool {
		changed := u.MembershipStatus != sub.Status || !sameTime(u.MembershipTaken, sub.Taken)
		u.MembershipStatus = sub.Status
		u.MembershipTaken = cloneTime(sub.Taken)
		return changed
	}), nil
}

func (r *UserRepo) SetRole(_ context.Context, id string, role entity.Role) (repository.UpdateResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.UpdateResult{}, fmt.Errorf("SetRole: %w", err)
	}
	return r.update(func(u *entity.User) bool { return u.ID == id }, func(u *entity.User) bool {
		changed := u.Role != role
		u.Role = role
		return changed
	}), nil
}

func (r *UserRepo) Delete(_ context.Context, id string) (repository.DeleteResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.DeleteResult{}, fmt.Errorf("Delete: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	before := len(r.s.users)
	r.s.users = slices.DeleteFunc(r.s.users, func(u *entity.User) bool { return u.ID == id })
	return repository.DeleteResult{Deleted: int64(before - len(r.s.users))}, nil
}

func (r *UserRepo) findBy(match func(*entity.User) bool) *entity.User {
	for _, u := range r.s.users {
		if match(u) {
			return u
		}
	}
	return nil
}

func (r *UserRepo) update(match func(*entity.User) bool, apply func(*entity.User) bool) repository.UpdateResult {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u := r.findBy(match)
	if u == nil {
		return repository.UpdateResult{}
	}
	return repository.UpdateResult{Matched: 1, Modified: boolCount(apply(u))}
}

// PublisherRepo implements repository.PublisherRepository.
type PublisherRepo struct{ s *Store }

func (r *PublisherRepo) List(context.Context) ([]*entity.Publisher, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Publisher, 0, len(r.s.publishers))
	for _, p := range r.s.publishers {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *PublisherRepo) Create(_ context.Context, p *entity.Publisher) (string, error) {
	cp := *p
	cp.ID = entity.NewID()
	r.s.mu.Lock()
	r.s.publishers = append(r.s.publishers, &cp)
	r.s.mu.Unlock()
	return cp.ID, nil
}

// TestimonialRepo implements repository.TestimonialRepository.
type TestimonialRepo struct{ s *Store }

func (r *TestimonialRepo) List(context.Context) ([]*entity.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Testimonial, 0, len(r.s.testimonials))
	for _, t := range r.s.testimonials {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *TestimonialRepo) Create(_ context.Context, t *entity.Testimonial) (string, error) {
	cp := *t
	cp.ID = entity.NewID()
	r.s.mu.Lock()
	r.s.testimonials = append(r.s.testimonials, &cp)
	r.s.mu.Unlock()
	return cp.ID, nil
}
