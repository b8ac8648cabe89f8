package repository

import "daily-news/internal/domain/entity"

// ArticleFilter is a conjunction of optional article predicates.
// Each adapter translates it into its own query language; an empty filter matches everything.
//
//	f := repository.NewArticleFilter().
//		WithStatus(entity.StatusApproved).
//		WithTitleContains("election")
type ArticleFilter struct {
	Status        *entity.ArticleStatus
	AuthorEmail   *string
	TitleContains *string // case-insensitive substring match
	Publisher     *string // exact match
	AnyTags       []string
}

// NewArticleFilter returns a filter that matches every article.
func NewArticleFilter() ArticleFilter {
	return ArticleFilter{}
}

// WithStatus restricts the filter to a single moderation status.
func (f ArticleFilter) WithStatus(s entity.ArticleStatus) ArticleFilter {
	f.Status = &s
	return f
}

// WithAuthor restricts to articles written by email. An empty email leaves the filter unchanged.
func (f ArticleFilter) WithAuthor(email string) ArticleFilter {
	if email == "" {
		return f
	}
	f.AuthorEmail = &email
	return f
}

// WithTitleContains adds a case-insensitive title substring predicate. Empty text is ignored.
func (f ArticleFilter) WithTitleContains(text string) ArticleFilter {
	if text == "" {
		return f
	}
	f.TitleContains = &text
	return f
}

// WithPublisher adds an exact publisher predicate. An empty publisher is ignored.
func (f ArticleFilter) WithPublisher(publisher string) ArticleFilter {
	if publisher == "" {
		return f
	}
	f.Publisher = &publisher
	return f
}

// WithAnyTags matches articles sharing at least one tag with tags. An empty list is ignored.
func (f ArticleFilter) WithAnyTags(tags []string) ArticleFilter {
	if len(tags) == 0 {
		return f
	}
	f.AnyTags = append([]string(nil), tags...)
	return f
}

// Matches evaluates the filter against an article in memory.
// Adapters use it to keep their translations honest in tests, and stubs use it directly.
func (f ArticleFilter) Matches(a *entity.Article) bool {
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if f.AuthorEmail != nil && a.AuthorEmail != *f.AuthorEmail {
		return false
	}
	if f.TitleContains != nil && !containsFold(a.Title, *f.TitleContains) {
		return false
	}
	if f.Publisher != nil && a.Publisher != *f.Publisher {
		return false
	}
	if len(f.AnyTags) > 0 && !intersects(a.Tags, f.AnyTags) {
		return false
	}
	return true
}
