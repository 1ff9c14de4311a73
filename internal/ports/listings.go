package ports

import (
	"context"
	"time"

	"github.com/makaan/makaan-api/internal/domain/model"
)

// PropertyStore persists and retrieves listings.
type PropertyStore interface {
	Create(ctx context.Context, p model.Property) (model.Property, error)
	GetByID(ctx context.Context, id string) (model.Property, error)
	List(ctx context.Context, opts model.PropertiesListOptions) ([]model.Property, int, error)
}

// InquiryStore persists contact-agent submissions.
type InquiryStore interface {
	Create(ctx context.Context, inq model.Inquiry) (model.Inquiry, error)
	ListByProperty(ctx context.Context, propertyID string) ([]model.Inquiry, error)
}

// StoredObject identifies an uploaded image: the public URL clients fetch
// and the bucket key for later management.
type StoredObject struct {
	URL string
	Key string
}

// ImageStore uploads listing photos to object storage.
type ImageStore interface {
	// Put stores one object and returns its public URL and key. Filename is
	// advisory; implementations derive their own collision-free key.
	Put(ctx context.Context, filename, contentType string, body []byte) (StoredObject, error)

	// Delete removes a stored object by key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// CacheRepository is a byte-oriented cache with TTL semantics.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
