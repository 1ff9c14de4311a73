package httpx

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/makaan/makaan-api/internal/domain/model"
	apperrors "github.com/makaan/makaan-api/internal/errors"
	"github.com/makaan/makaan-api/internal/ports"
)

func TestListProperties_QueryParamsMapToFilters(t *testing.T) {
	router, m := newTestRouter(t)

	m.properties.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.PropertiesListOptions) ([]model.Property, int, error) {
			assert.Equal(t, 2, opts.Page)
			assert.Equal(t, 5, opts.Limit)
			require.NotNil(t, opts.City)
			assert.Equal(t, "Austin", *opts.City)
			require.NotNil(t, opts.Type)
			assert.Equal(t, model.PropertyTypeHouse, *opts.Type)
			require.NotNil(t, opts.MinPrice)
			assert.Equal(t, 100000.0, *opts.MinPrice)
			require.NotNil(t, opts.MinBedrooms)
			assert.Equal(t, 3, *opts.MinBedrooms)
			require.NotNil(t, opts.Q)
			assert.Equal(t, "garden", *opts.Q)
			return []model.Property{{ID: "p1"}}, 11, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/api/properties?page=2&limit=5&city=Austin&type=house&min_price=100000&bedrooms=3&q=garden", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(11), pagination["total"])
	assert.Equal(t, float64(3), pagination["pages"])
}

func TestGetProperty(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.properties.EXPECT().
			GetByID(gomock.Any(), "p1").
			Return(model.Property{ID: "p1", Title: "Sunny 2BR apartment", OwnerID: "u1"}, nil)
		m.users.EXPECT().
			GetByID(gomock.Any(), "u1").
			Return(model.User{ID: "u1", Name: "Jane", Email: "jane@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/properties/p1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		property := decodeBody(t, rec)["property"].(map[string]any)
		assert.Equal(t, "Sunny 2BR apartment", property["title"])
		owner := property["owner"].(map[string]any)
		assert.Equal(t, "jane@example.com", owner["email"])
	})

	t.Run("not found", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.properties.EXPECT().
			GetByID(gomock.Any(), "missing").
			Return(model.Property{}, apperrors.NotFound("Resource not found"))

		req := httptest.NewRequest(http.MethodGet, "/api/properties/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Property not found", decodeBody(t, rec)["message"])
	})
}

// buildCreateForm assembles a multipart body with the standard listing
// fields plus one image file.
func buildCreateForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":         "Sunny 2BR apartment",
		"description":   "Close to the park",
		"price":         "250000",
		"property_type": "apartment",
		"address":       "12 Elm St",
		"city":          "Austin",
		"state":         "TX",
		"zip_code":      "78701",
		"bedrooms":      "2",
		"bathrooms":     "1",
		"area":          "85.5",
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	fw, err := mw.CreateFormFile("images", "front.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCreateProperty_RequiresSession(t *testing.T) {
	router, _ := newTestRouter(t)

	body, contentType := buildCreateForm(t)
	req := httptest.NewRequest(http.MethodPost, "/api/properties", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// A JSON 401, not a login redirect.
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authenticated", decodeBody(t, rec)["message"])
}

func TestCreateProperty_Success(t *testing.T) {
	router, m := newTestRouter(t)

	m.images.EXPECT().
		Put(gomock.Any(), "front.jpg", gomock.Any(), []byte("jpeg-bytes")).
		Return(ports.StoredObject{URL: "http://cdn/front", Key: "properties/front"}, nil)
	m.properties.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p model.Property) (model.Property, error) {
			assert.Equal(t, "u1", p.OwnerID)
			assert.Equal(t, "Sunny 2BR apartment", p.Title)
			assert.Equal(t, model.PropertyTypeApartment, p.PropertyType)
			assert.Equal(t, model.PropertyStatusForSale, p.Status)
			assert.Equal(t, 2, p.Features.Bedrooms)
			require.Len(t, p.Images, 1)
			p.ID = "p1"
			return p, nil
		})

	body, contentType := buildCreateForm(t)
	req := httptest.NewRequest(http.MethodPost, "/api/properties", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(mintSessionCookie(t, "u1", "jane@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "Property created successfully", resp["message"])
	property := resp["property"].(map[string]any)
	assert.Equal(t, "p1", property["id"])
}

func TestCreateProperty_ValidationFailure(t *testing.T) {
	router, _ := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "No description"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/properties", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(mintSessionCookie(t, "u1", "jane@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProperty_BadNumericField(t *testing.T) {
	router, _ := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Listing"))
	require.NoError(t, mw.WriteField("price", "not-a-number"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/properties", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(mintSessionCookie(t, "u1", "jane@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "price must be a number", decodeBody(t, rec)["message"])
}
