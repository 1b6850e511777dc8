package pnrcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client, ttl), mr
}

func TestCache_SetGet(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	status := &domain.PNRStatus{
		PNR:         "1234567890",
		TrainNumber: "12951",
		Passengers: []domain.Passenger{
			{Name: "Passenger", Age: 30, Gender: "M", Status: "CNF", CurrentStatus: "CNF"},
		},
	}
	require.NoError(t, cache.Set(ctx, status))

	assert.True(t, mr.Exists("pnr:1234567890"))
	assert.Equal(t, time.Minute, mr.TTL("pnr:1234567890"))

	got, err := cache.Get(ctx, "1234567890")
	require.NoError(t, err)
	assert.Equal(t, status, got)
}

func TestCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	_, err := cache.Get(context.Background(), "0000000000")

	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &domain.PNRStatus{PNR: "1234567890"}))
	assert.Equal(t, domain.DefaultPNRCacheTTL, mr.TTL("pnr:1234567890"))

	mr.FastForward(domain.DefaultPNRCacheTTL + time.Second)

	_, err := cache.Get(ctx, "1234567890")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_CorruptedValue(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("pnr:1234567890", "{broken"))

	_, err := cache.Get(context.Background(), "1234567890")

	assert.ErrorIs(t, err, ErrCache)
}

func TestCache_RedisDown(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, err := cache.Get(context.Background(), "1234567890")

	assert.ErrorIs(t, err, ErrCache)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
