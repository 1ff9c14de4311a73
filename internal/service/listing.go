package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/makaan/makaan-api/internal/domain/auth"
	"github.com/makaan/makaan-api/internal/domain/model"
	apperrors "github.com/makaan/makaan-api/internal/errors"
	"github.com/makaan/makaan-api/internal/ports"
)

// firstPageCacheKey caches the unfiltered first page, the landing-page query
// that takes nearly all list traffic.
const firstPageCacheKey = "properties:first-page"

func propertyCacheKey(id string) string {
	return "property:" + id
}

// ImageUpload is one photo attached to a create-listing request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ListingStores groups the storage dependencies of ListingService.
type ListingStores struct {
	Properties ports.PropertyStore
	Users      ports.UserStore
}

// ListingMedia groups object storage and caching for ListingService.
// Cache is optional; when nil every read goes to the store.
type ListingMedia struct {
	Images   ports.ImageStore
	Cache    ports.CacheRepository
	CacheTTL time.Duration
}

// ListingServiceOptions groups dependencies for ListingService.
type ListingServiceOptions struct {
	Stores ListingStores // Required: property and user storage
	Media  ListingMedia  // Required: image store; cache optional
	Logger *slog.Logger  // Optional: structured logger
}

// ListingService provides business logic for property listings: creation
// with image upload, detail reads and filtered list queries.
type ListingService struct {
	properties ports.PropertyStore
	users      ports.UserStore
	images     ports.ImageStore
	cache      ports.CacheRepository
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// NewListingService constructs a new ListingService.
func NewListingService(opts ListingServiceOptions) (*ListingService, error) {
	if opts.Stores.Properties == nil {
		return nil, errors.New("PropertyStore is required")
	}
	if opts.Stores.Users == nil {
		return nil, errors.New("UserStore is required")
	}
	if opts.Media.Images == nil {
		return nil, errors.New("ImageStore is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "listing_service")
		logger.Debug("ListingService initialized")
	}

	return &ListingService{
		properties: opts.Stores.Properties,
		users:      opts.Stores.Users,
		images:     opts.Media.Images,
		cache:      opts.Media.Cache,
		cacheTTL:   opts.Media.CacheTTL,
		logger:     logger,
	}, nil
}

// MustNewListingService constructs a new ListingService and panics on error.
// Use this when you want fail-fast behavior during application startup.
func MustNewListingService(opts ListingServiceOptions) *ListingService {
	svc, err := NewListingService(opts)
	if err != nil {
		panic(err) //nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
	}
	return svc
}

// Create validates the request, uploads images concurrently, and persists
// the listing with the session user as owner. If any upload fails the whole
// request fails and already-uploaded objects are removed.
func (s *ListingService) Create(
	ctx context.Context,
	claims domainauth.Claims,
	req model.CreatePropertyRequest,
	uploads []ImageUpload,
) (model.Property, error) {
	if claims.UserID == "" {
		return model.Property{}, apperrors.Unauthorized(notAuthenticatedMsg)
	}
	if err := req.Validate(); err != nil {
		return model.Property{}, apperrors.Validation(err.Error())
	}

	images, err := s.uploadImages(ctx, uploads)
	if err != nil {
		return model.Property{}, err
	}

	created, err := s.properties.Create(ctx, model.Property{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Location:     req.Location,
		PropertyType: req.PropertyType,
		Status:       req.Status,
		Features:     req.Features,
		Images:       images,
		OwnerID:      claims.UserID,
	})
	if err != nil {
		s.removeUploads(ctx, images)
		return model.Property{}, fmt.Errorf("create property: %w", err)
	}

	s.evict(ctx, firstPageCacheKey, propertyCacheKey(created.ID))

	if s.logger != nil {
		s.logger.InfoContext(ctx, "property created",
			"property_id", created.ID, "owner_id", created.OwnerID, "images", len(created.Images))
	}
	return created, nil
}

// uploadImages fans the uploads out to object storage, failing the batch on
// the first error. Objects stored before the failure are removed.
func (s *ListingService) uploadImages(ctx context.Context, uploads []ImageUpload) ([]model.Image, error) {
	images := make([]model.Image, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	for i, up := range uploads {
		g.Go(func() error {
			obj, err := s.images.Put(gctx, up.Filename, up.ContentType, up.Data)
			if err != nil {
				return fmt.Errorf("upload image %q: %w", up.Filename, err)
			}
			images[i] = model.Image{URL: obj.URL, Key: obj.Key}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.removeUploads(ctx, images)
		return nil, err
	}
	return images, nil
}

// removeUploads best-effort deletes stored objects after a failed request.
func (s *ListingService) removeUploads(ctx context.Context, images []model.Image) {
	for _, img := range images {
		if img.Key == "" {
			continue
		}
		if err := s.images.Delete(ctx, img.Key); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "orphaned upload not removed", "key", img.Key, "error", err)
		}
	}
}

// Get returns one listing with its owner's public contact card attached.
// Reads go through the cache when one is configured.
func (s *ListingService) Get(ctx context.Context, id string) (model.PropertyWithOwner, error) {
	if cached, ok := s.cacheGet(ctx, propertyCacheKey(id)); ok {
		return cached, nil
	}

	prop, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return model.PropertyWithOwner{}, apperrors.NotFound("Property not found")
		}
		return model.PropertyWithOwner{}, fmt.Errorf("get property: %w", err)
	}

	owner, err := s.users.GetByID(ctx, prop.OwnerID)
	if err != nil {
		return model.PropertyWithOwner{}, fmt.Errorf("lookup owner %s: %w", prop.OwnerID, err)
	}

	detail := model.PropertyWithOwner{Property: prop, Owner: owner.Public()}
	s.cacheSet(ctx, propertyCacheKey(id), detail)
	return detail, nil
}

// List returns a filtered, paginated page of listings. The unfiltered first
// page is served from cache when possible.
func (s *ListingService) List(ctx context.Context, opts model.PropertiesListOptions) (model.PropertyPage, error) {
	opts.Normalize()
	cacheable := s.cache != nil && opts == (model.PropertiesListOptions{Page: 1, Limit: model.DefaultPageSize})

	if cacheable {
		if page, ok := cacheGetAs[model.PropertyPage](ctx, s, firstPageCacheKey); ok {
			return page, nil
		}
	}

	properties, total, err := s.properties.List(ctx, opts)
	if err != nil {
		return model.PropertyPage{}, fmt.Errorf("list properties: %w", err)
	}

	page := model.PropertyPage{
		Properties: properties,
		Pagination: model.NewPagination(total, opts.Page, opts.Limit),
	}
	if cacheable {
		cacheSetAs(ctx, s, firstPageCacheKey, page)
	}
	return page, nil
}

func (s *ListingService) cacheGet(ctx context.Context, key string) (model.PropertyWithOwner, bool) {
	return cacheGetAs[model.PropertyWithOwner](ctx, s, key)
}

func (s *ListingService) cacheSet(ctx context.Context, key string, detail model.PropertyWithOwner) {
	cacheSetAs(ctx, s, key, detail)
}

// cacheGetAs reads and decodes a cached document. Cache failures are logged
// and treated as misses; the store stays authoritative.
func cacheGetAs[T any](ctx context.Context, s *ListingService, key string) (T, bool) {
	var zero T
	if s.cache == nil {
		return zero, false
	}
	raw, found, err := s.cache.Get(ctx, key)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return zero, false
	}
	if !found {
		return zero, false
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "cache entry corrupt", "key", key, "error", err)
		}
		s.evict(ctx, key)
		return zero, false
	}
	return out, true
}

// cacheSetAs stores a document best-effort; a failed write never fails the
// request that produced the document.
func cacheSetAs[T any](ctx context.Context, s *ListingService, key string, doc T) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		}
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}

func (s *ListingService) evict(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "cache evict failed", "keys", keys, "error", err)
	}
}
