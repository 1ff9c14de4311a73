package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/makaan/makaan-api/internal/domain/model"
	apperrors "github.com/makaan/makaan-api/internal/errors"
	"github.com/makaan/makaan-api/internal/mocks"
	"github.com/makaan/makaan-api/internal/testutil"
)

func newTestInquiryService(t *testing.T) (*InquiryService, *mocks.MockInquiryStore) {
	t.Helper()
	store := mocks.NewMockInquiryStore(gomock.NewController(t))
	svc, err := NewInquiryService(InquiryServiceOptions{Inquiries: store})
	require.NoError(t, err)
	return svc, store
}

func TestNewInquiryService_RequiredDependency(t *testing.T) {
	_, err := NewInquiryService(InquiryServiceOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InquiryStore is required")

	assert.Panics(t, func() { MustNewInquiryService(InquiryServiceOptions{}) })
}

func TestInquiryService_Create_Success(t *testing.T) {
	svc, store := newTestInquiryService(t)

	store.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inq model.Inquiry) (model.Inquiry, error) {
			assert.Equal(t, "p1", inq.PropertyID)
			assert.Equal(t, "Buyer", inq.Name)
			require.NotNil(t, inq.Phone)
			assert.Equal(t, "555-0100", *inq.Phone)
			inq.ID = "i1"
			return inq, nil
		})

	created, err := svc.Create(context.Background(), model.CreateInquiryRequest{
		PropertyID: "p1",
		Name:       "Buyer",
		Email:      "buyer@example.com",
		Phone:      testutil.StringPtr("555-0100"),
		Message:    "Is this still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, "i1", created.ID)
}

func TestInquiryService_Create_ValidationError(t *testing.T) {
	svc, _ := newTestInquiryService(t)

	_, err := svc.Create(context.Background(), model.CreateInquiryRequest{
		PropertyID: "p1",
		Name:       "Buyer",
		Email:      "not-an-email",
		Message:    "Hello",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInquiryService_Create_PropertyMissing(t *testing.T) {
	svc, store := newTestInquiryService(t)

	store.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(model.Inquiry{}, apperrors.NotFound("Property not found"))

	_, err := svc.Create(context.Background(), model.CreateInquiryRequest{
		PropertyID: "missing",
		Name:       "Buyer",
		Email:      "buyer@example.com",
		Message:    "Hello",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.EqualError(t, err, "Property not found")
}

func TestInquiryService_ListByProperty(t *testing.T) {
	svc, store := newTestInquiryService(t)

	store.EXPECT().
		ListByProperty(gomock.Any(), "p1").
		Return([]model.Inquiry{{ID: "i1"}, {ID: "i2"}}, nil)

	list, err := svc.ListByProperty(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	store.EXPECT().
		ListByProperty(gomock.Any(), "p2").
		Return(nil, errors.New("db down"))

	_, err = svc.ListByProperty(context.Background(), "p2")
	require.Error(t, err)
}
