// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, User, Publisher and Testimonial,
// along with their validation rules and domain-specific errors.
package entity

import (
	"fmt"
	"strings"
	"time"
)

// ArticleStatus is the moderation state of an article.
type ArticleStatus string

const (
	StatusPending  ArticleStatus = "pending"
	StatusApproved ArticleStatus = "approved"
	StatusDeclined ArticleStatus = "declined"
)

// IsValid reports whether s is one of the known moderation states.
func (s ArticleStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// ParseArticleStatus converts user input into an ArticleStatus.
func ParseArticleStatus(raw string) (ArticleStatus, error) {
	s := ArticleStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("must be one of %s, %s, %s", StatusPending, StatusApproved, StatusDeclined),
		}
	}
	return s, nil
}

// Article represents a news article submitted by an author and moderated by an administrator.
// TimesVisited only ever grows; DeclineReason is meaningful only when Status is declined.
type Article struct {
	ID            string
	Title         string
	Image         string
	Publisher     string
	Description   string
	Tags          []string
	AuthorEmail   string
	AuthorName    string
	AuthorPhoto   string
	PostedDate    *time.Time
	Status        ArticleStatus
	DeclineReason string
	IsPremium     bool
	TimesVisited  int64
}

// ArticleContent is the editable body of an article, replaced as a whole by content edits.
type ArticleContent struct {
	Title       string
	Image       string
	Publisher   string
	Tags        []string
	Description string
}

// Validate checks the fields every stored article needs.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if a.Status != "" && !a.Status.IsValid() {
		return &ValidationError{Field: "status", Message: "must be one of pending, approved, declined"}
	}
	if a.TimesVisited < 0 {
		return &ValidationError{Field: "timesVisited", Message: "cannot be negative"}
	}
	return nil
}

// NormalizeTags trims tags and drops empty entries and duplicates, keeping input order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SplitTags parses a comma separated tag list such as "politics, sports".
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return NormalizeTags(strings.Split(raw, ","))
}
