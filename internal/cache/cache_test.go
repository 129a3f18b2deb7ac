package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Disabled(t *testing.T) {
	ctx := context.Background()

	for name, c := range map[string]*Client{
		"nil":        nil,
		"empty addr": New("", "", 0),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, c.Enabled())
			assert.NoError(t, c.Ping(ctx))
			assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

			data, err := c.Get(ctx, "k")
			assert.NoError(t, err)
			assert.Nil(t, data)

			var dst map[string]string
			assert.False(t, c.GetJSON(ctx, "k", &dst))
			assert.NoError(t, c.SetJSON(ctx, "k", map[string]string{"a": "b"}, time.Minute))
			assert.NoError(t, c.Delete(ctx, "k"))
			assert.NoError(t, c.Close())
		})
	}
}

func TestClient_FailsSafeWhenUnreachable(t *testing.T) {
	ctx := context.Background()
	c := NewFromRedis(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	}))
	defer c.Close()

	assert.True(t, c.Enabled())
	assert.Error(t, c.Ping(ctx))
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	c := NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer c.Close()

	require.True(t, c.Enabled())
	require.NoError(t, c.Ping(ctx))

	require.NoError(t, c.Set(ctx, "raw", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "raw")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)

	require.NoError(t, c.SetJSON(ctx, "json", map[string]int{"n": 2}, time.Minute))
	var dst map[string]int
	require.True(t, c.GetJSON(ctx, "json", &dst))
	assert.Equal(t, map[string]int{"n": 2}, dst)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("raw"))

	require.NoError(t, c.Delete(ctx, "json"))
	assert.False(t, c.GetJSON(ctx, "json", &dst))
}
