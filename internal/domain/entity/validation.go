package entity

import (
	"net/mail"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDLength is the length of a hex encoded object id.
const IDLength = 24

// maxEmailLength bounds email input; RFC 5321 caps a path at 254 characters.
const maxEmailLength = 254

// NewID returns a fresh object id in its hex form.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ValidateID checks that id is a 24 character object id in its canonical
// lower-case hex form, the form NewID and every store produce. Upper-case hex
// is rejected so that an id compares equal on every backend.
// It runs before any store call so malformed ids never reach the driver.
func ValidateID(id string) error {
	if len(id) != IDLength {
		return ErrInvalidID
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return ErrInvalidID
		}
	}
	return nil
}

// ValidateEmail performs a structural check of an email address.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if len(email) > maxEmailLength {
		return &ValidationError{Field: "email", Message: "is too long"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Message: "invalid format"}
	}
	return nil
}
