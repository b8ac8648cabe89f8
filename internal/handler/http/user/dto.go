// Package user provides HTTP handlers for user registration, profile,
// membership and role endpoints.
package user

import (
	"time"

	"daily-news/internal/domain/entity"
)

// DTO represents the JSON structure for user data transfer.
// Unset role and membership fields are serialized as null.
type DTO struct {
	ID               string     `json:"_id" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Email            string     `json:"email" example:"reader@example.com"`
	Name             string     `json:"name" example:"Jane Doe"`
	PhotoURL         string     `json:"photoURL" example:"https://i.ibb.co/jane.png"`
	Role             *string    `json:"role" example:"admin"`
	MembershipStatus *string    `json:"membershipStatus" example:"premium"`
	MembershipTaken  *time.Time `json:"membershipTaken" example:"2026-03-01T10:00:00Z"`
}

// PageDTO is the body of the admin user listing.
type PageDTO struct {
	Users      []DTO `json:"users"`
	TotalCount int64 `json:"totalCount" example:"12"`
}

// messageResponse carries the outcome text of profile and subscription updates.
type messageResponse struct {
	Message       string `json:"message" example:"User updated successfully"`
	ModifiedCount *int64 `json:"modifiedCount,omitempty" example:"1"`
}

// existsResponse is returned when a signup finds the email already registered.
type existsResponse struct {
	Message    string  `json:"message" example:"user already exists"`
	InsertedID *string `json:"insertedId"`
}

type adminResponse struct {
	Admin bool `json:"admin" example:"false"`
}

type membershipResponse struct {
	IsPremiumMember bool `json:"isPremiumMember" example:"true"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		PhotoURL:         u.PhotoURL,
		Role:             nullable(string(u.Role)),
		MembershipStatus: nullable(string(u.MembershipStatus)),
		MembershipTaken:  u.MembershipTaken,
	}
}

func toDTOs(users []*entity.User) []DTO {
	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	return out
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
