package article

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"daily-news/internal/common/pagination"
	"daily-news/internal/domain/entity"
	"daily-news/internal/observability/metrics"
	"daily-news/internal/repository"
	"daily-news/internal/resilience/circuitbreaker"
)

// DefaultTrendingLimit is the number of trending articles returned when no limit is requested.
const DefaultTrendingLimit = 6

// CreateInput represents the input parameters for submitting a new article.
type CreateInput struct {
	Title       string
	Image       string
	Publisher   string
	Description string
	Tags        []string
	AuthorEmail string
	AuthorName  string
	AuthorPhoto string
	PostedDate  *time.Time
	IsPremium   bool
}

// ReplaceInput is the full editable content of an article.
type ReplaceInput struct {
	Title       string
	Image       string
	Publisher   string
	Tags        []string
	Description string
}

// StatusInput is a partial moderation update. Empty Status and nil IsPremium are left untouched.
// DeclineReason is only written together with Status "declined".
type StatusInput struct {
	Status        string
	DeclineReason string
	IsPremium     *bool
}

// SearchInput holds the optional search predicates. Empty fields are ignored.
type SearchInput struct {
	Text      string
	Publisher string
	Tags      []string
}

// Service provides article management use cases.
// Every store call runs through Guard; a nil Guard calls the repository directly.
type Service struct {
	Repo          repository.ArticleRepository
	Guard         circuitbreaker.Guard
	TrendingLimit int
}

// List retrieves all articles from the repository.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := circuitbreaker.Call(ctx, s.Guard, "article.find", func(ctx context.Context) ([]*entity.Article, error) {
		return s.Repo.Find(ctx, repository.NewArticleFilter())
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListPaged returns one page of articles in natural store order together with the
// total number of articles. The page and count queries run concurrently.
func (s *Service) ListPaged(ctx context.Context, params pagination.Params) (*pagination.Page[*entity.Article], error) {
	if params.Page < 1 || params.Limit < 1 {
		return nil, ErrInvalidPagination
	}

	filter := repository.NewArticleFilter()
	var (
		articles []*entity.Article
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = circuitbreaker.Call(gctx, s.Guard, "article.find_page", func(ctx context.Context) ([]*entity.Article, error) {
			return s.Repo.FindPage(ctx, filter, params.Offset(), params.Limit)
		})
		if err != nil {
			return fmt.Errorf("list articles page: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = circuitbreaker.Call(gctx, s.Guard, "article.count", func(ctx context.Context) (int64, error) {
			return s.Repo.Count(ctx, filter)
		})
		if err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &pagination.Page[*entity.Article]{
		Items:  articles,
		Total:  total,
		Params: params,
	}, nil
}

// ListByAuthor returns the articles written by email, or every article when email is empty.
func (s *Service) ListByAuthor(ctx context.Context, email string) ([]*entity.Article, error) {
	filter := repository.NewArticleFilter().WithAuthor(email)
	articles, err := circuitbreaker.Call(ctx, s.Guard, "article.find", func(ctx context.Context) ([]*entity.Article, error) {
		return s.Repo.Find(ctx, filter)
	})
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID for a malformed id and ErrArticleNotFound when nothing matches.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if err := entity.ValidateID(id); err != nil {
		return nil, ErrInvalidArticleID
	}

	article, err := circuitbreaker.Call(ctx, s.Guard, "article.get", func(ctx context.Context) (*entity.Article, error) {
		return s.Repo.Get(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Trending returns up to limit articles ordered by visit count, highest first.
// A non-positive limit falls back to the configured trending limit.
func (s *Service) Trending(ctx context.Context, limit int) ([]*entity.Article, error) {
	if limit <= 0 {
		limit = s.trendingLimit()
	}

	articles, err := circuitbreaker.Call(ctx, s.Guard, "article.most_visited", func(ctx context.Context) ([]*entity.Article, error) {
		return s.Repo.FindMostVisited(ctx, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("trending articles: %w", err)
	}
	return articles, nil
}

func (s *Service) trendingLimit() int {
	if s.TrendingLimit > 0 {
		return s.TrendingLimit
	}
	return DefaultTrendingLimit
}

// Search returns approved articles matching every supplied predicate.
// Pending and declined articles are never returned.
func (s *Service) Search(ctx context.Context, in SearchInput) ([]*entity.Article, error) {
	filter := repository.NewArticleFilter().
		WithStatus(entity.StatusApproved).
		WithTitleContains(in.Text).
		WithPublisher(in.Publisher).
		WithAnyTags(entity.NormalizeTags(in.Tags))

	articles, err := circuitbreaker.Call(ctx, s.Guard, "article.find", func(ctx context.Context) ([]*entity.Article, error) {
		return s.Repo.Find(ctx, filter)
	})
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}

// Create stores a new article and returns its id.
// The visit counter starts at zero and the status is always pending; only
// UpdateStatus moves an article out of moderation.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	art := &entity.Article{
		Title:        in.Title,
		Image:        in.Image,
		Publisher:    in.Publisher,
		Description:  in.Description,
		Tags:         entity.NormalizeTags(in.Tags),
		AuthorEmail:  in.AuthorEmail,
		AuthorName:   in.AuthorName,
		AuthorPhoto:  in.AuthorPhoto,
		PostedDate:   in.PostedDate,
		Status:       entity.StatusPending,
		IsPremium:    in.IsPremium,
		TimesVisited: 0,
	}
	if err := art.Validate(); err != nil {
		return "", err
	}

	id, err := circuitbreaker.Call(ctx, s.Guard, "article.create", func(ctx context.Context) (string, error) {
		return s.Repo.Create(ctx, art)
	})
	if err != nil {
		return "", fmt.Errorf("create article: %w", err)
	}
	metrics.RecordArticleCreated()
	return id, nil
}

// IncrementVisit adds exactly one to the article's visit counter.
func (s *Service) IncrementVisit(ctx context.Context, id string) (repository.UpdateResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.UpdateResult{}, ErrInvalidArticleID
	}

	res, err := circuitbreaker.Call(ctx, s.Guard, "article.increment_visits", func(ctx context.Context) (repository.UpdateResult, error) {
		return s.Repo.IncrementVisits(ctx, id)
	})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("increment visits: %w", err)
	}
	if res.Matched == 0 {
		return res, ErrArticleNotFound
	}
	metrics.RecordArticleVisit()
	return res, nil
}

// Replace overwrites the editable content of an article. When no article has
// the id, a new pending article is created under it.
func (s *Service) Replace(ctx context.Context, id string, in ReplaceInput) (repository.UpdateResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.UpdateResult{}, ErrInvalidArticleID
	}

	content := entity.ArticleContent{
		Title:       in.Title,
		Image:       in.Image,
		Publisher:   in.Publisher,
		Tags:        entity.NormalizeTags(in.Tags),
		Description: in.Description,
	}
	res, err := circuitbreaker.Call(ctx, s.Guard, "article.replace", func(ctx context.Context) (repository.UpdateResult, error) {
		return s.Repo.ReplaceContent(ctx, id, content)
	})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("replace article: %w", err)
	}
	return res, nil
}

// UpdateStatus applies a partial moderation update.
// Returns ErrArticleNotFound when no article has the id.
func (s *Service) UpdateStatus(ctx context.Context, id string, in StatusInput) (repository.UpdateResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.UpdateResult{}, ErrInvalidArticleID
	}

	var update repository.ArticleUpdate
	if in.Status != "" {
		status, err := entity.ParseArticleStatus(in.Status)
		if err != nil {
			return repository.UpdateResult{}, err
		}
		update.Status = &status
		if status == entity.StatusDeclined && in.DeclineReason != "" {
			reason := in.DeclineReason
			update.DeclineReason = &reason
		}
	}
	update.IsPremium = in.IsPremium

	res, err := circuitbreaker.Call(ctx, s.Guard, "article.update_fields", func(ctx context.Context) (repository.UpdateResult, error) {
		return s.Repo.UpdateFields(ctx, id, update)
	})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("update article status: %w", err)
	}
	if res.Matched == 0 {
		return res, ErrArticleNotFound
	}
	if update.Status != nil {
		metrics.RecordArticleModerated(string(*update.Status))
	}
	return res, nil
}

// Delete removes an article. Deleting a missing article reports zero deletions, not an error.
func (s *Service) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	if err := entity.ValidateID(id); err != nil {
		return repository.DeleteResult{}, ErrInvalidArticleID
	}

	res, err := circuitbreaker.Call(ctx, s.Guard, "article.delete", func(ctx context.Context) (repository.DeleteResult, error) {
		return s.Repo.Delete(ctx, id)
	})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("delete article: %w", err)
	}
	return res, nil
}
