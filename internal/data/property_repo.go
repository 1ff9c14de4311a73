package data

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/makaan/makaan-api/internal/data/database"
	"github.com/makaan/makaan-api/internal/data/pgxutil"
	"github.com/makaan/makaan-api/internal/domain/model"
	apperrors "github.com/makaan/makaan-api/internal/errors"
	"github.com/makaan/makaan-api/internal/ports"
)

// PropertyRepo provides database operations for listings. Location,
// features, and images live in JSONB columns; pgx maps them to and from
// the domain structs directly.
type PropertyRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

var _ ports.PropertyStore = (*PropertyRepo)(nil)

// NewPropertyRepo creates a new PropertyRepo with real time provider.
func NewPropertyRepo(db *sql.DB) *PropertyRepo {
	return &PropertyRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPropertyRepoWithTimeProvider creates a new PropertyRepo with a custom time provider.
func NewPropertyRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PropertyRepo {
	return &PropertyRepo{DB: db, timeProvider: tp}
}

const (
	propertyInsertQuery = `
		INSERT INTO properties (
			title, description, price, location, property_type, status, features, images, owner_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10
		) RETURNING id, title, description, price, location, property_type, status, features, images, owner_id, created_at, updated_at`

	propertyGetByIDQuery = `
		SELECT id, title, description, price, location, property_type, status, features, images, owner_id, created_at, updated_at
		FROM properties
		WHERE id = $1`
)

// propertyColumns returns the standard column list for dynamic property queries.
func propertyColumns() []string {
	return []string{
		"id",
		"title",
		"description",
		"price",
		"location",
		"property_type",
		"status",
		"features",
		"images",
		"owner_id",
		"created_at",
		"updated_at",
	}
}

// Create inserts a new listing.
func (r *PropertyRepo) Create(ctx context.Context, p model.Property) (model.Property, error) {
	now := r.timeProvider.Now().UTC()
	images := p.Images
	if images == nil {
		images = []model.Image{}
	}

	var out model.Property
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, propertyInsertQuery,
			p.Title,
			p.Description,
			p.Price,
			p.Location,
			p.PropertyType,
			p.Status,
			p.Features,
			images,
			p.OwnerID,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Property])
		return err
	}); err != nil {
		return model.Property{}, apperrors.MapDBError(err)
	}
	return out, nil
}

// GetByID retrieves a listing by ID.
func (r *PropertyRepo) GetByID(ctx context.Context, id string) (model.Property, error) {
	var out model.Property
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, propertyGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Property])
		return err
	})
	if err != nil {
		return model.Property{}, apperrors.MapDBError(err)
	}
	return out, nil
}

// List retrieves one page of listings matching opts, plus the unpaged total.
func (r *PropertyRepo) List(
	ctx context.Context,
	opts model.PropertiesListOptions,
) ([]model.Property, int, error) {
	opts.Normalize()
	queryOpts := buildPropertyQueryOptions(opts)

	listQuery, listArgs := database.BuildListQuery(queryOpts)
	countQuery, countArgs := database.BuildListQuery(database.CountOptions(queryOpts))

	var (
		out   []model.Property
		total int
	)
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, listQuery, listArgs...)
		if err != nil {
			return err
		}
		defer rows.Close()
		if out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Property]); err != nil {
			return err
		}
		return conn.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	})
	if err != nil {
		return nil, 0, apperrors.MapDBError(err)
	}
	if out == nil {
		out = []model.Property{}
	}
	return out, total, nil
}

// buildPropertyQueryOptions maps listing filters onto query-builder options.
// JSONB path filters go through raw conditions; values stay parameterized.
func buildPropertyQueryOptions(opts model.PropertiesListOptions) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(propertyColumns()...),
		database.WithOrderBy("created_at", "DESC"),
		database.WithLimit(opts.Limit),
		database.WithOffset(opts.Offset()),
	}

	if opts.City != nil && strings.TrimSpace(*opts.City) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereRawCond("location->>'city' ILIKE $1", strings.TrimSpace(*opts.City)),
		))
	}
	if opts.Type != nil && *opts.Type != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("property_type", database.Equal, *opts.Type),
		))
	}
	if opts.Status != nil && *opts.Status != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("status", database.Equal, *opts.Status),
		))
	}
	if opts.MinPrice != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("price", database.GreaterThanOrEqual, *opts.MinPrice),
		))
	}
	if opts.MaxPrice != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("price", database.LessThanOrEqual, *opts.MaxPrice),
		))
	}
	if opts.MinBedrooms != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereRawCond("(features->>'bedrooms')::int >= $1", *opts.MinBedrooms),
		))
	}
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("title", database.ILike, "%"+strings.TrimSpace(*opts.Q)+"%"),
		))
	}

	return database.NewListQueryOptions("properties", queryOpts...)
}
