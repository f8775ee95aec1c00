package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
}

func TestRedisListCacheRoundTripAndInvalidate(t *testing.T) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	defer mini.Close()

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	defer client.Close()

	ctx := context.Background()
	listCache := NewListCache(client, "roster", time.Minute, zerolog.Nop())

	var got []entry
	require.False(t, listCache.Get(ctx, "students", &got))

	listCache.Set(ctx, "students", []entry{{ID: 1, Name: "Ana"}})
	listCache.Set(ctx, "teachers", []entry{{ID: 2, Name: "Bruno"}})
	require.True(t, mini.Exists("roster:list:students"))

	require.True(t, listCache.Get(ctx, "students", &got))
	require.Equal(t, []entry{{ID: 1, Name: "Ana"}}, got)

	require.NoError(t, mini.Set("other:list:students", "keep"))
	listCache.Invalidate(ctx)

	require.False(t, mini.Exists("roster:list:students"))
	require.False(t, mini.Exists("roster:list:teachers"))
	require.True(t, mini.Exists("other:list:students"))
}

func TestRedisListCacheExpires(t *testing.T) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	defer mini.Close()

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	defer client.Close()

	ctx := context.Background()
	listCache := NewListCache(client, "roster", 30*time.Second, zerolog.Nop())
	listCache.Set(ctx, "classes", []entry{{ID: 1}})

	mini.FastForward(31 * time.Second)

	var got []entry
	require.False(t, listCache.Get(ctx, "classes", &got))
}

func TestNopCache(t *testing.T) {
	listCache := NewListCache(nil, "roster", time.Minute, zerolog.Nop())
	listCache.Set(context.Background(), "students", []entry{{ID: 1}})

	var got []entry
	require.False(t, listCache.Get(context.Background(), "students", &got))
	listCache.Invalidate(context.Background())
}
