package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery_NoConditions(t *testing.T) {
	opts := NewListQueryOptions("properties")
	query, args := BuildListQuery(opts)

	assert.Equal(t, `SELECT * FROM "properties"`, query)
	assert.Empty(t, args)
}

func TestBuildListQuery_StandardConditions(t *testing.T) {
	opts := NewListQueryOptions("properties",
		WithCondition(WhereCond("status", Equal, "for-sale")),
		WithCondition(WhereCond("price", GreaterThanOrEqual, 100000)),
		WithCondition(WhereCond("price", LessThanOrEqual, 500000)),
		WithOrderBy("created_at", "desc"),
		WithLimit(10),
		WithOffset(20),
	)
	query, args := BuildListQuery(opts)

	assert.Equal(t,
		`SELECT * FROM "properties" WHERE "status" = $1 AND "price" >= $2 AND "price" <= $3 ORDER BY "created_at" DESC LIMIT $4 OFFSET $5`,
		query)
	assert.Equal(t, []any{"for-sale", 100000, 500000, 10, 20}, args)
}

func TestBuildListQuery_RawConditionRenumbersPlaceholders(t *testing.T) {
	opts := NewListQueryOptions("properties",
		WithCondition(WhereCond("property_type", Equal, "house")),
		WithCondition(WhereRawCond("location->>'city' ILIKE $1", "%austin%")),
		WithCondition(WhereRawCond("(features->>'bedrooms')::int >= $1", 3)),
	)
	query, args := BuildListQuery(opts)

	assert.Equal(t,
		`SELECT * FROM "properties" WHERE "property_type" = $1 AND location->>'city' ILIKE $2 AND (features->>'bedrooms')::int >= $3`,
		query)
	assert.Equal(t, []any{"house", "%austin%", 3}, args)
}

func TestBuildListQuery_ILike(t *testing.T) {
	opts := NewListQueryOptions("properties",
		WithCondition(WhereCond("title", ILike, "%garden%")),
	)
	query, args := BuildListQuery(opts)

	assert.Equal(t, `SELECT * FROM "properties" WHERE "title" ILIKE $1`, query)
	assert.Equal(t, []any{"%garden%"}, args)
}

func TestBuildListQuery_CountOnly(t *testing.T) {
	opts := NewListQueryOptions("properties",
		WithCountOnly(),
		WithCondition(WhereCond("status", Equal, "for-rent")),
		WithLimit(10),
		WithOffset(20),
	)
	query, args := BuildListQuery(opts)

	// Count queries never page.
	assert.Equal(t, `SELECT COUNT(*) FROM "properties" WHERE "status" = $1`, query)
	assert.Equal(t, []any{"for-rent"}, args)
}

func TestCountOptions_SharesConditions(t *testing.T) {
	base := NewListQueryOptions("properties",
		WithCondition(WhereCond("status", Equal, "sold")),
		WithOrderBy("created_at", "DESC"),
		WithLimit(10),
	)
	query, args := BuildListQuery(CountOptions(base))

	assert.Equal(t, `SELECT COUNT(*) FROM "properties" WHERE "status" = $1`, query)
	assert.Equal(t, []any{"sold"}, args)
}

func TestBuildListQuery_SanitizesIdentifiers(t *testing.T) {
	opts := NewListQueryOptions(`props"; DROP TABLE users; --`,
		WithCondition(WhereCond(`title" OR 1=1 --`, Equal, "x")),
	)
	query, _ := BuildListQuery(opts)

	// Quotes inside identifiers must be escaped, not interpreted.
	assert.Contains(t, query, `"props""; DROP TABLE users; --"`)
	assert.Contains(t, query, `"title"" OR 1=1 --"`)
}

func TestBuildListQuery_InvalidOrderDirDropped(t *testing.T) {
	opts := NewListQueryOptions("properties",
		WithOrderBy("created_at", "sideways"),
	)
	query, _ := BuildListQuery(opts)

	assert.Equal(t, `SELECT * FROM "properties" ORDER BY "created_at"`, query)
}

func TestBuildListQuery_SelectedColumns(t *testing.T) {
	opts := NewListQueryOptions("users",
		WithColumns("id", "email"),
	)
	query, _ := BuildListQuery(opts)

	assert.Equal(t, `SELECT "id", "email" FROM "users"`, query)
}

func TestWhereCond_PanicsOnCustom(t *testing.T) {
	assert.Panics(t, func() {
		WhereCond("f", Custom, 1)
	})
}

func TestBuildListQuery_NilOptions(t *testing.T) {
	query, args := BuildListQuery(nil)
	assert.Empty(t, query)
	assert.Nil(t, args)
}
