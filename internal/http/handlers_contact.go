package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/makaan/makaan-api/internal/domain/model"
)

// InquiryAPI defines the inquiry service operations the handler depends on.
type InquiryAPI interface {
	Create(ctx context.Context, req model.CreateInquiryRequest) (model.Inquiry, error)
}

// ContactHandlers provides the HTTP handler for contact-agent submissions.
type ContactHandlers struct {
	Svc    InquiryAPI
	Logger *slog.Logger
}

// Create handles POST /api/contact.
func (h *ContactHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateInquiryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	inquiry, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true, "inquiry": inquiry})
}
