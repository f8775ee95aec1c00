package database

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestConnectRedis(t *testing.T) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	defer mini.Close()

	client, err := ConnectRedis(context.Background(), "redis://"+mini.Addr()+"/0", time.Second)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "ping", "pong", 0).Err())
	stored, err := mini.Get("ping")
	require.NoError(t, err)
	require.Equal(t, "pong", stored)
}

func TestConnectRedisRequiresURL(t *testing.T) {
	_, err := ConnectRedis(context.Background(), "", time.Second)
	require.Error(t, err)
}
