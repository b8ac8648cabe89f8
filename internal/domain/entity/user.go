package entity

import (
	"strings"
	"time"
)

// Role is the authorization role of a user. The zero value means no role.
type Role string

const (
	RoleNone  Role = ""
	RoleAdmin Role = "admin"
)

// MembershipStatus describes a user's subscription tier. The zero value means no membership.
type MembershipStatus string

const (
	MembershipNone    MembershipStatus = ""
	MembershipPremium MembershipStatus = "premium"
)

// ParseMembershipStatus accepts "premium" or an empty value.
func ParseMembershipStatus(raw string) (MembershipStatus, error) {
	switch s := MembershipStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case MembershipNone, MembershipPremium:
		return s, nil
	}
	return "", &ValidationError{Field: "membershipStatus", Message: "must be premium or null"}
}

// User is a reader or author of the platform. Email is the natural key.
type User struct {
	ID               string
	Email            string
	Name             string
	PhotoURL         string
	Role             Role
	MembershipStatus MembershipStatus
	MembershipTaken  *time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsPremiumMember reports whether the user has an active premium membership.
func (u *User) IsPremiumMember() bool {
	return u != nil && u.MembershipStatus == MembershipPremium
}

// Validate checks the fields required to register a user.
func (u *User) Validate() error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	return nil
}

// Profile holds the user-editable display fields.
type Profile struct {
	Name     string
	PhotoURL string
}

// Subscription holds the membership fields written by subscription events.
type Subscription struct {
	Status MembershipStatus
	Taken  *time.Time
}
