package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makaan/makaan-api/internal/testutil"
)

func TestRedisCacheRepo_Set_Get_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "property:1", []byte(`{"id":"1"}`), 5*time.Minute))

		value, found, err := repo.Get(ctx, "property:1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`{"id":"1"}`), value)

		ttl := client.TTL(ctx, "property:1").Val()
		assert.True(t, ttl > 0 && ttl <= 5*time.Minute)
	})

	t.Run("miss reports not found", func(t *testing.T) {
		_, found, err := repo.Get(ctx, "property:missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete removes keys", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "property:2", []byte("x"), time.Minute))
		require.NoError(t, repo.Set(ctx, "property:3", []byte("y"), time.Minute))

		require.NoError(t, repo.Delete(ctx, "property:2", "property:3"))

		_, found, err := repo.Get(ctx, "property:2")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete with no keys is a noop", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx))
	})

	t.Run("empty key rejected", func(t *testing.T) {
		assert.Error(t, repo.Set(ctx, "", []byte("x"), time.Minute))
		_, _, err := repo.Get(ctx, "")
		assert.Error(t, err)
	})
}
