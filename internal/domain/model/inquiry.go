//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Inquiry represents a contact-agent submission for a listing.
type Inquiry struct {
	ID         string    `json:"id"              db:"id"`
	PropertyID string    `json:"property_id"     db:"property_id"`
	Name       string    `json:"name"            db:"name"`
	Email      string    `json:"email"           db:"email"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	Message    string    `json:"message"         db:"message"`
	CreatedAt  time.Time `json:"created_at"      db:"created_at"`
}

// CreateInquiryRequest represents parameters to submit an inquiry.
type CreateInquiryRequest struct {
	PropertyID string  `json:"propertyId"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Message    string  `json:"message"`
}

// Validate validates CreateInquiryRequest.
func (r *CreateInquiryRequest) Validate() error {
	r.PropertyID = strings.TrimSpace(r.PropertyID)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)

	switch {
	case r.PropertyID == "":
		return errors.New("propertyId is required")
	case r.Name == "":
		return errors.New("name is required")
	case r.Email == "":
		return errors.New("email is required")
	case !reEmail.MatchString(r.Email):
		return errors.New("email is invalid")
	case r.Message == "":
		return errors.New("message is required")
	}
	return nil
}
