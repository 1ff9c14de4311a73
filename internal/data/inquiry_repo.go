package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/makaan/makaan-api/internal/data/pgxutil"
	"github.com/makaan/makaan-api/internal/domain/model"
	apperrors "github.com/makaan/makaan-api/internal/errors"
	"github.com/makaan/makaan-api/internal/ports"
)

// InquiryRepo provides database operations for contact inquiries.
type InquiryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

var _ ports.InquiryStore = (*InquiryRepo)(nil)

// NewInquiryRepo creates a new InquiryRepo with real time provider.
func NewInquiryRepo(db *sql.DB) *InquiryRepo {
	return &InquiryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewInquiryRepoWithTimeProvider creates a new InquiryRepo with a custom time provider.
func NewInquiryRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *InquiryRepo {
	return &InquiryRepo{DB: db, timeProvider: tp}
}

const (
	inquiryInsertQuery = `
		INSERT INTO inquiries (property_id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, property_id, name, email, phone, message, created_at`

	inquiryListByPropertyQuery = `
		SELECT id, property_id, name, email, phone, message, created_at
		FROM inquiries
		WHERE property_id = $1
		ORDER BY created_at DESC`

	propertyExistsQuery = `SELECT EXISTS(SELECT 1 FROM properties WHERE id = $1)`
)

// Create persists an inquiry. The property-existence check and the insert
// run in one transaction so a concurrently deleted listing cannot leave an
// orphaned inquiry.
func (r *InquiryRepo) Create(ctx context.Context, inq model.Inquiry) (model.Inquiry, error) {
	now := r.timeProvider.Now().UTC()

	var out model.Inquiry
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			var exists bool
			if err := tx.QueryRow(ctx, propertyExistsQuery, inq.PropertyID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return apperrors.NotFound("Property not found")
			}

			rows, err := tx.Query(ctx, inquiryInsertQuery,
				inq.PropertyID, inq.Name, inq.Email, inq.Phone, inq.Message, now)
			if err != nil {
				return err
			}
			defer rows.Close()
			out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Inquiry])
			return err
		},
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return model.Inquiry{}, appErr
		}
		return model.Inquiry{}, apperrors.MapDBError(err)
	}
	return out, nil
}

// ListByProperty retrieves all inquiries for one listing, newest first.
func (r *InquiryRepo) ListByProperty(ctx context.Context, propertyID string) ([]model.Inquiry, error) {
	var out []model.Inquiry
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, inquiryListByPropertyQuery, propertyID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Inquiry])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	if out == nil {
		out = []model.Inquiry{}
	}
	return out, nil
}
