package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makaan/makaan-api/internal/domain/model"
	apperrors "github.com/makaan/makaan-api/internal/errors"
	"github.com/makaan/makaan-api/internal/testutil"
)

func TestInquiryRepo_Create_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		owner := createTestUser(t, db)
		prop, err := NewPropertyRepo(db).Create(ctx, testProperty(owner.ID))
		require.NoError(t, err)

		repo := NewInquiryRepo(db)
		created, err := repo.Create(ctx, model.Inquiry{
			PropertyID: prop.ID,
			Name:       "Buyer",
			Email:      "buyer@example.com",
			Phone:      testutil.StringPtr("555-0100"),
			Message:    "Is this still available?",
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, prop.ID, created.PropertyID)
		require.NotNil(t, created.Phone)
		assert.Equal(t, "555-0100", *created.Phone)

		list, err := repo.ListByProperty(ctx, prop.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)
	})
}

func TestInquiryRepo_Create_PropertyMissing(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewInquiryRepo(db)

		_, err := repo.Create(context.Background(), model.Inquiry{
			PropertyID: "00000000-0000-0000-0000-000000000000",
			Name:       "Buyer",
			Email:      "buyer@example.com",
			Message:    "Hello",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
