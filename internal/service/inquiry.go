package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/makaan/makaan-api/internal/domain/model"
	apperrors "github.com/makaan/makaan-api/internal/errors"
	"github.com/makaan/makaan-api/internal/ports"
)

// InquiryServiceOptions groups dependencies for InquiryService.
type InquiryServiceOptions struct {
	Inquiries ports.InquiryStore // Required: inquiry storage
	Logger    *slog.Logger       // Optional: structured logger
}

// InquiryService handles contact-agent submissions. There is no outbound
// delivery; submissions are persisted and logged for the listing owner.
type InquiryService struct {
	inquiries ports.InquiryStore
	logger    *slog.Logger
}

// NewInquiryService constructs a new InquiryService.
func NewInquiryService(opts InquiryServiceOptions) (*InquiryService, error) {
	if opts.Inquiries == nil {
		return nil, errors.New("InquiryStore is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "inquiry_service")
	}

	return &InquiryService{inquiries: opts.Inquiries, logger: logger}, nil
}

// MustNewInquiryService constructs a new InquiryService and panics on error.
func MustNewInquiryService(opts InquiryServiceOptions) *InquiryService {
	svc, err := NewInquiryService(opts)
	if err != nil {
		panic(err) //nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
	}
	return svc
}

// Create validates and persists one inquiry. The store verifies the listing
// still exists; a vanished listing yields a not-found error.
func (s *InquiryService) Create(ctx context.Context, req model.CreateInquiryRequest) (model.Inquiry, error) {
	if err := req.Validate(); err != nil {
		return model.Inquiry{}, apperrors.Validation(err.Error())
	}

	inquiry, err := s.inquiries.Create(ctx, model.Inquiry{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return model.Inquiry{}, apperrors.NotFound("Property not found")
		}
		return model.Inquiry{}, fmt.Errorf("create inquiry: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "inquiry submitted",
			"inquiry_id", inquiry.ID, "property_id", inquiry.PropertyID)
	}
	return inquiry, nil
}

// ListByProperty returns all inquiries for a listing, newest first.
func (s *InquiryService) ListByProperty(ctx context.Context, propertyID string) ([]model.Inquiry, error) {
	list, err := s.inquiries.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return list, nil
}
