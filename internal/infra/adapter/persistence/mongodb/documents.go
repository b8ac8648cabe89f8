// Package mongodb provides MongoDB implementations of repository interfaces.
package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"daily-news/internal/domain/entity"
)

// Collection names shared with the index bootstrap in infra/db.
const (
	ArticlesCollection     = "articles"
	UsersCollection        = "users"
	PublishersCollection   = "publishers"
	TestimonialsCollection = "testimonials"
)

type articleDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Image         string             `bson:"image"`
	Publisher     string             `bson:"publisher"`
	Description   string             `bson:"description"`
	Tags          []string           `bson:"tags"`
	AuthorEmail   string             `bson:"authorEmail"`
	AuthorName    string             `bson:"authorName,omitempty"`
	AuthorPhoto   string             `bson:"authorPhoto,omitempty"`
	PostedDate    *time.Time         `bson:"postedDate,omitempty"`
	Status        string             `bson:"status"`
	DeclineReason string             `bson:"declineReason,omitempty"`
	IsPremium     bool               `bson:"isPremium"`
	TimesVisited  int64              `bson:"timesVisited"`
}

func newArticleDoc(a *entity.Article) articleDoc {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return articleDoc{
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

func (d articleDoc) toEntity() *entity.Article {
	return &entity.Article{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Image:         d.Image,
		Publisher:     d.Publisher,
		Description:   d.Description,
		Tags:          d.Tags,
		AuthorEmail:   d.AuthorEmail,
		AuthorName:    d.AuthorName,
		AuthorPhoto:   d.AuthorPhoto,
		PostedDate:    d.PostedDate,
		Status:        entity.ArticleStatus(d.Status),
		DeclineReason: d.DeclineReason,
		IsPremium:     d.IsPremium,
		TimesVisited:  d.TimesVisited,
	}
}

// userDoc keeps role and membership as pointers so that unset values are stored as null.
type userDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Email            string             `bson:"email"`
	Name             string             `bson:"name"`
	PhotoURL         string             `bson:"photoURL"`
	Role             *string            `bson:"role"`
	MembershipStatus *string            `bson:"membershipStatus"`
	MembershipTaken  *time.Time         `bson:"membershipTaken"`
}

func newUserDoc(u *entity.User) userDoc {
	return userDoc{
		Email:            u.Email,
		Name:             u.Name,
		PhotoURL:         u.PhotoURL,
		Role:             nullable(string(u.Role)),
		MembershipStatus: nullable(string(u.MembershipStatus)),
		MembershipTaken:  u.MembershipTaken,
	}
}

func (d userDoc) toEntity() *entity.User {
	u := &entity.User{
		ID:              d.ID.Hex(),
		Email:           d.Email,
		Name:            d.Name,
		PhotoURL:        d.PhotoURL,
		MembershipTaken: d.MembershipTaken,
	}
	if d.Role != nil {
		u.Role = entity.Role(*d.Role)
	}
	if d.MembershipStatus != nil {
		u.MembershipStatus = entity.MembershipStatus(*d.MembershipStatus)
	}
	return u
}

type publisherDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Logo string             `bson:"logo"`
}

type testimonialDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name,omitempty"`
	Text string             `bson:"text"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
