package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	domainauth "github.com/makaan/makaan-api/internal/domain/auth"
	"github.com/makaan/makaan-api/internal/domain/model"
	"github.com/makaan/makaan-api/internal/service"
)

// ListingAPI defines the listing service operations the handlers depend on.
type ListingAPI interface {
	Create(ctx context.Context, claims domainauth.Claims, req model.CreatePropertyRequest, uploads []service.ImageUpload) (model.Property, error)
	Get(ctx context.Context, id string) (model.PropertyWithOwner, error)
	List(ctx context.Context, opts model.PropertiesListOptions) (model.PropertyPage, error)
}

// PropertyHandlers provides HTTP handlers for listing reads and creation.
type PropertyHandlers struct {
	Svc            ListingAPI
	Auth           SessionVerifier
	Cookie         CookieSettings
	MaxUploadBytes int64
	Logger         *slog.Logger
}

// List handles GET /api/properties. All filters are optional; unknown
// values are ignored rather than rejected.
func (h *PropertyHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.Svc.List(r.Context(), listOptionsFromQuery(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// Get handles GET /api/properties/{id}.
func (h *PropertyHandlers) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"property": detail})
}

// Create handles POST /api/properties: a multipart form with listing fields
// plus zero or more files under "images". The route is open at the gate;
// authentication happens here so the client gets a JSON 401 instead of a
// login redirect.
func (h *PropertyHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromRequest(r, h.Auth, h.Cookie.Name)
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, Message: "Not authenticated"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: "Invalid multipart form"})
		return
	}

	req, err := createRequestFromForm(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}

	uploads, err := imageUploadsFromForm(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: "Could not read uploaded images"})
		return
	}

	property, err := h.Svc.Create(r.Context(), session.Claims(), req, uploads)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{
		"message":  "Property created successfully",
		"property": property,
	})
}

// listOptionsFromQuery maps query parameters onto list options. Numeric
// parameters that fail to parse are treated as absent.
func listOptionsFromQuery(r *http.Request) model.PropertiesListOptions {
	q := r.URL.Query()
	opts := model.PropertiesListOptions{
		Page:  atoiOrZero(q.Get("page")),
		Limit: atoiOrZero(q.Get("limit")),
	}
	if v := q.Get("city"); v != "" {
		opts.City = &v
	}
	if v := q.Get("type"); v != "" {
		t := model.PropertyType(v)
		opts.Type = &t
	}
	if v := q.Get("status"); v != "" {
		s := model.PropertyStatus(v)
		opts.Status = &s
	}
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		opts.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		opts.MaxPrice = &v
	}
	if v, err := strconv.Atoi(q.Get("bedrooms")); err == nil {
		opts.MinBedrooms = &v
	}
	if v := q.Get("q"); v != "" {
		opts.Q = &v
	}
	return opts
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// createRequestFromForm maps the multipart fields onto a create request.
// Field-level validation stays in the service; this only rejects values
// that do not parse at all.
func createRequestFromForm(r *http.Request) (model.CreatePropertyRequest, error) {
	req := model.CreatePropertyRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Location: model.Location{
			Address: r.FormValue("address"),
			City:    r.FormValue("city"),
			State:   r.FormValue("state"),
			ZipCode: r.FormValue("zip_code"),
		},
		PropertyType: model.PropertyType(r.FormValue("property_type")),
		Status:       model.PropertyStatus(r.FormValue("status")),
	}

	var err error
	if req.Price, err = formFloat(r, "price"); err != nil {
		return req, err
	}
	if req.Features.Area, err = formFloat(r, "area"); err != nil {
		return req, err
	}
	if req.Features.Bedrooms, err = formInt(r, "bedrooms"); err != nil {
		return req, err
	}
	if req.Features.Bathrooms, err = formInt(r, "bathrooms"); err != nil {
		return req, err
	}
	if req.Features.Parking, err = formInt(r, "parking"); err != nil {
		return req, err
	}
	return req, nil
}

func formFloat(r *http.Request, field string) (float64, error) {
	v := r.FormValue(field)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &formFieldError{field}
	}
	return f, nil
}

func formInt(r *http.Request, field string) (int, error) {
	v := r.FormValue(field)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &formFieldError{field}
	}
	return n, nil
}

type formFieldError struct {
	field string
}

func (e *formFieldError) Error() string {
	return e.field + " must be a number"
}

// imageUploadsFromForm reads every file attached under "images" into memory.
// The request body is already bounded by MaxBytesReader.
func imageUploadsFromForm(r *http.Request) ([]service.ImageUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	files := r.MultipartForm.File["images"]
	uploads := make([]service.ImageUpload, 0, len(files))
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		closeErr := f.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, closeErr
		}
		uploads = append(uploads, service.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}
