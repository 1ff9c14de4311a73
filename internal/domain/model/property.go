//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxPropertyTitleLen = 100

	// DefaultPageSize is the listing page size when the client does not ask
	// for one. MaxPageSize bounds what a client may request.
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// PropertyType enumerates supported listing categories.
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeCondo      PropertyType = "condo"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

// Valid reports whether the property type is supported.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCondo, PropertyTypeLand, PropertyTypeCommercial:
		return true
	default:
		return false
	}
}

// PropertyStatus enumerates listing lifecycle states.
type PropertyStatus string

const (
	PropertyStatusForSale PropertyStatus = "for-sale"
	PropertyStatusForRent PropertyStatus = "for-rent"
	PropertyStatusSold    PropertyStatus = "sold"
	PropertyStatusRented  PropertyStatus = "rented"
)

// Valid reports whether the property status is supported.
func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusForSale, PropertyStatusForRent, PropertyStatusSold, PropertyStatusRented:
		return true
	default:
		return false
	}
}

// normalizePropertyStatus trims and lowercases the input, defaulting to
// for-sale when empty.
func normalizePropertyStatus(v PropertyStatus) PropertyStatus {
	normalized := PropertyStatus(strings.ToLower(strings.TrimSpace(string(v))))
	if normalized == "" {
		return PropertyStatusForSale
	}
	return normalized
}

// Location is a listing's postal address.
type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// Validate checks that every address component is present.
func (l *Location) Validate() error {
	l.Address = strings.TrimSpace(l.Address)
	l.City = strings.TrimSpace(l.City)
	l.State = strings.TrimSpace(l.State)
	l.ZipCode = strings.TrimSpace(l.ZipCode)

	switch {
	case l.Address == "":
		return errors.New("location.address is required")
	case l.City == "":
		return errors.New("location.city is required")
	case l.State == "":
		return errors.New("location.state is required")
	case l.ZipCode == "":
		return errors.New("location.zip_code is required")
	}
	return nil
}

// Features describes a listing's amenities. Zero values are valid.
type Features struct {
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Area      float64 `json:"area"`
	Parking   int     `json:"parking"`
}

// Validate rejects negative amenity counts.
func (f Features) Validate() error {
	if f.Bedrooms < 0 || f.Bathrooms < 0 || f.Area < 0 || f.Parking < 0 {
		return errors.New("features cannot be negative")
	}
	return nil
}

// Image is a stored listing photo: the public URL plus the storage key
// that lets us delete or replace the object later.
type Image struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Property represents a real-estate listing.
type Property struct {
	ID           string         `json:"id"            db:"id"`
	Title        string         `json:"title"         db:"title"`
	Description  string         `json:"description"   db:"description"`
	Price        float64        `json:"price"         db:"price"`
	Location     Location       `json:"location"      db:"location"`
	PropertyType PropertyType   `json:"property_type" db:"property_type"`
	Status       PropertyStatus `json:"status"        db:"status"`
	Features     Features       `json:"features"      db:"features"`
	Images       []Image        `json:"images"        db:"images"`
	OwnerID      string         `json:"owner_id"      db:"owner_id"`
	CreatedAt    time.Time      `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"    db:"updated_at"`
}

// PropertyWithOwner is the detail view: the listing plus the owner's
// public contact card.
type PropertyWithOwner struct {
	Property
	Owner PublicUser `json:"owner"`
}

// CreatePropertyRequest represents parameters to create a listing.
// Images are attached by the service after upload, not by the client.
type CreatePropertyRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"`
	Location     Location       `json:"location"`
	PropertyType PropertyType   `json:"property_type"`
	Status       PropertyStatus `json:"status,omitempty"`
	Features     Features       `json:"features"`
}

// Validate validates CreatePropertyRequest, normalizing status to its
// default when absent.
func (r *CreatePropertyRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)

	if r.Title == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(r.Title) > maxPropertyTitleLen {
		return errors.New("title cannot exceed 100 characters")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	if r.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if err := r.Location.Validate(); err != nil {
		return err
	}
	r.PropertyType = PropertyType(strings.ToLower(strings.TrimSpace(string(r.PropertyType))))
	if !r.PropertyType.Valid() {
		return errors.New("invalid property_type")
	}
	r.Status = normalizePropertyStatus(r.Status)
	if !r.Status.Valid() {
		return errors.New("invalid status")
	}
	return r.Features.Validate()
}

// PropertiesListOptions controls paging and filtering for listing properties.
// Notes:
// - Q matches title via ILIKE substring.
// - City matches case-insensitively.
// - Type and Status match exactly.
// - Price bounds and MinBedrooms are inclusive.
type PropertiesListOptions struct {
	Page        int
	Limit       int
	City        *string
	Type        *PropertyType
	Status      *PropertyStatus
	MinPrice    *float64
	MaxPrice    *float64
	MinBedrooms *int
	Q           *string
}

// Normalize clamps paging values into their supported ranges.
func (o *PropertiesListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = DefaultPageSize
	}
	if o.Limit > MaxPageSize {
		o.Limit = MaxPageSize
	}
}

// Offset returns the row offset for the normalized page.
func (o PropertiesListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Pagination describes one page of a listing result.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// NewPagination computes page counts for a total row count.
func NewPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Pages: pages}
}

// PropertyPage is one page of listings plus its pagination envelope.
type PropertyPage struct {
	Properties []Property `json:"properties"`
	Pagination Pagination `json:"pagination"`
}
