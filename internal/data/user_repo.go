package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/makaan/makaan-api/internal/data/pgxutil"
	"github.com/makaan/makaan-api/internal/domain/model"
	apperrors "github.com/makaan/makaan-api/internal/errors"
	"github.com/makaan/makaan-api/internal/ports"
)

// UserRepo provides database operations for user accounts.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

var _ ports.UserStore = (*UserRepo)(nil)

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries.
const (
	userInsertQuery = `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, name, email, password_hash, created_at, updated_at`

	userGetByEmailQuery = `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1`

	userGetByIDQuery = `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1`
)

// Create inserts a new account. A duplicate email surfaces as a conflict
// error; the unique index guarantees no second row is written.
func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string) (model.User, error) {
	now := r.timeProvider.Now().UTC()

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, userInsertQuery, name, email, passwordHash, now)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return model.User{}, apperrors.MapDBError(err)
	}
	return out, nil
}

// GetByEmail retrieves an account by exact email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getByQuery(ctx, userGetByEmailQuery, email)
}

// GetByID retrieves an account by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.getByQuery(ctx, userGetByIDQuery, id)
}

// getByQuery executes a single-row user query.
// Uses variadic args to avoid slice allocation at call sites.
func (r *UserRepo) getByQuery(ctx context.Context, q string, args ...any) (model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		return model.User{}, apperrors.MapDBError(err)
	}
	return user, nil
}
