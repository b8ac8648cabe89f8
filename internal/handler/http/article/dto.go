// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, searching, submitting, moderating and deleting articles.
package article

import (
	"time"

	"daily-news/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID            string     `json:"_id" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Title         string     `json:"title" example:"Parliament passes the budget"`
	Image         string     `json:"image" example:"https://i.ibb.co/budget.jpg"`
	Publisher     string     `json:"publisher" example:"Daily Star"`
	Description   string     `json:"description" example:"The annual budget was approved..."`
	Tags          []string   `json:"tags" example:"politics,economy"`
	AuthorEmail   string     `json:"authorEmail" example:"author@example.com"`
	AuthorName    string     `json:"authorName,omitempty" example:"Jane Doe"`
	AuthorPhoto   string     `json:"authorPhoto,omitempty"`
	PostedDate    *time.Time `json:"postedDate,omitempty" example:"2026-03-01T10:00:00Z"`
	Status        string     `json:"status" example:"approved"`
	DeclineReason string     `json:"declineReason,omitempty"`
	IsPremium     bool       `json:"isPremium" example:"false"`
	TimesVisited  int64      `json:"timesVisited" example:"42"`
}

// PageDTO is the body of the admin article listing.
type PageDTO struct {
	Articles   []DTO `json:"articles"`
	TotalCount int64 `json:"totalCount" example:"57"`
}

func toDTO(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:            a.ID,
		Title:         a.Title,
		Image:         a.Image,
		Publisher:     a.Publisher,
		Description:   a.Description,
		Tags:          tags,
		AuthorEmail:   a.AuthorEmail,
		AuthorName:    a.AuthorName,
		AuthorPhoto:   a.AuthorPhoto,
		PostedDate:    a.PostedDate,
		Status:        string(a.Status),
		DeclineReason: a.DeclineReason,
		IsPremium:     a.IsPremium,
		TimesVisited:  a.TimesVisited,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return out
}
