package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// unreachableClient fails fast on every command.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:         "127.0.0.1:1",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
		MaxRetries:   -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisCache_NilClient(t *testing.T) {
	c := NewRedisCache(nil, "answer_key", quietLogger())
	ctx := context.Background()

	var dest payload
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), ErrCacheMiss)
	assert.NoError(t, c.Set(ctx, "k", payload{Name: "a"}, time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.DeletePattern(ctx, "*"))
}

func TestRedisCache_Key(t *testing.T) {
	assert.Equal(t, "answer_key:abc", NewRedisCache(nil, "answer_key", nil).key("abc"))
	assert.Equal(t, "abc", NewRedisCache(nil, "", nil).key("abc"))
}

func TestCacheOrExecute_LoadsOnMiss(t *testing.T) {
	c := NewRedisCache(nil, "test", quietLogger())

	calls := 0
	var dest payload
	err := c.CacheOrExecute(context.Background(), "k", &dest, time.Minute, func() (interface{}, error) {
		calls++
		return &payload{Name: "loaded", Count: 3}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, payload{Name: "loaded", Count: 3}, dest)
}

func TestCacheOrExecute_PropagatesLoaderError(t *testing.T) {
	c := NewRedisCache(nil, "test", quietLogger())
	boom := errors.New("boom")

	var dest payload
	err := c.CacheOrExecute(context.Background(), "k", &dest, time.Minute, func() (interface{}, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestCacheOrExecute_DegradesWhenRedisDown(t *testing.T) {
	c := NewRedisCache(unreachableClient(t), "test", quietLogger())

	var dest payload
	err := c.CacheOrExecute(context.Background(), "k", &dest, time.Minute, func() (interface{}, error) {
		return payload{Name: "fallback"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "fallback", dest.Name)
}

func TestRedisCache_GetReportsConnectionErrors(t *testing.T) {
	c := NewRedisCache(unreachableClient(t), "test", quietLogger())

	var dest payload
	err := c.Get(context.Background(), "k", &dest)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)

	assert.Error(t, c.Delete(context.Background(), "k"))
	assert.Error(t, c.DeletePattern(context.Background(), "answer_key:*"))
}
