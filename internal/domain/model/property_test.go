package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePropertyRequest() CreatePropertyRequest {
	return CreatePropertyRequest{
		Title:       "Sunny 2BR apartment",
		Description: "Close to the park",
		Price:       250000,
		Location: Location{
			Address: "12 Elm St",
			City:    "Austin",
			State:   "TX",
			ZipCode: "78701",
		},
		PropertyType: PropertyTypeApartment,
		Features:     Features{Bedrooms: 2, Bathrooms: 1, Area: 85.5},
	}
}

func TestCreatePropertyRequestValidate(t *testing.T) {
	t.Run("valid request defaults status to for-sale", func(t *testing.T) {
		req := validCreatePropertyRequest()
		require.NoError(t, req.Validate())
		assert.Equal(t, PropertyStatusForSale, req.Status)
	})

	t.Run("explicit status normalized", func(t *testing.T) {
		req := validCreatePropertyRequest()
		req.Status = " For-Rent "
		require.NoError(t, req.Validate())
		assert.Equal(t, PropertyStatusForRent, req.Status)
	})

	tests := []struct {
		name    string
		mutate  func(*CreatePropertyRequest)
		wantErr string
	}{
		{
			name:    "missing title",
			mutate:  func(r *CreatePropertyRequest) { r.Title = "   " },
			wantErr: "title is required",
		},
		{
			name:    "title too long",
			mutate:  func(r *CreatePropertyRequest) { r.Title = strings.Repeat("a", 101) },
			wantErr: "title cannot exceed 100 characters",
		},
		{
			name:    "missing description",
			mutate:  func(r *CreatePropertyRequest) { r.Description = "" },
			wantErr: "description is required",
		},
		{
			name:    "negative price",
			mutate:  func(r *CreatePropertyRequest) { r.Price = -1 },
			wantErr: "price cannot be negative",
		},
		{
			name:    "missing city",
			mutate:  func(r *CreatePropertyRequest) { r.Location.City = "" },
			wantErr: "location.city is required",
		},
		{
			name:    "unknown property type",
			mutate:  func(r *CreatePropertyRequest) { r.PropertyType = "castle" },
			wantErr: "invalid property_type",
		},
		{
			name:    "unknown status",
			mutate:  func(r *CreatePropertyRequest) { r.Status = "pending" },
			wantErr: "invalid status",
		},
		{
			name:    "negative bedrooms",
			mutate:  func(r *CreatePropertyRequest) { r.Features.Bedrooms = -1 },
			wantErr: "features cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreatePropertyRequest()
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPropertyTypeValid(t *testing.T) {
	assert.True(t, PropertyTypeHouse.Valid())
	assert.True(t, PropertyTypeCommercial.Valid())
	assert.False(t, PropertyType("villa").Valid())
}

func TestPropertiesListOptionsNormalize(t *testing.T) {
	tests := []struct {
		name      string
		opts      PropertiesListOptions
		wantPage  int
		wantLimit int
	}{
		{name: "zero values get defaults", opts: PropertiesListOptions{}, wantPage: 1, wantLimit: 10},
		{name: "negative page clamps", opts: PropertiesListOptions{Page: -3, Limit: 20}, wantPage: 1, wantLimit: 20},
		{name: "oversized limit clamps", opts: PropertiesListOptions{Page: 2, Limit: 500}, wantPage: 2, wantLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Normalize()
			assert.Equal(t, tt.wantPage, tt.opts.Page)
			assert.Equal(t, tt.wantLimit, tt.opts.Limit)
		})
	}
}

func TestPropertiesListOptionsOffset(t *testing.T) {
	opts := PropertiesListOptions{Page: 3, Limit: 10}
	assert.Equal(t, 20, opts.Offset())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		limit     int
		wantPages int
	}{
		{name: "exact multiple", total: 20, limit: 10, wantPages: 2},
		{name: "partial last page", total: 21, limit: 10, wantPages: 3},
		{name: "empty result", total: 0, limit: 10, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, 1, tt.limit)
			assert.Equal(t, tt.wantPages, p.Pages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}
