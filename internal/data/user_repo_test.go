package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/makaan/makaan-api/internal/errors"
	"github.com/makaan/makaan-api/internal/testutil"
)

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestUserRepo_Create_Get(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		email := uniqueEmail("jane")
		created, err := repo.Create(ctx, "Jane Doe", email, "$2a$10$digest")
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, "Jane Doe", created.Name)
		assert.Equal(t, email, created.Email)
		assert.Equal(t, "$2a$10$digest", created.PasswordHash)

		byEmail, err := repo.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)

		byID, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, email, byID.Email)
	})
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		email := uniqueEmail("dup")
		_, err := repo.Create(ctx, "First", email, "hash1")
		require.NoError(t, err)

		_, err = repo.Create(ctx, "Second", email, "hash2")
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))

		// The losing create must not write a second row.
		var count int
		require.NoError(t, db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM users WHERE email = $1", email).Scan(&count))
		assert.Equal(t, 1, count)
	})
}

func TestUserRepo_GetByEmail_CaseSensitive(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		email := uniqueEmail("Case")
		_, err := repo.Create(ctx, "Jane", email, "hash")
		require.NoError(t, err)

		// Exact match only; a different casing is a different identity.
		_, err = repo.GetByEmail(ctx, "case"+email[4:])
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)

		_, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
