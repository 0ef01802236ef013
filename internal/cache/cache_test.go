package cache

import (
	"context"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap/zaptest"
	"testing"
	"time"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rc.Close() })
	return NewRedisStore(rc, zaptest.NewLogger(t).Sugar()), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	if _, ok := s.Get(ctx, "weather_data_tampa"); ok {
		t.Fatal("expected miss on empty store")
	}

	s.Set(ctx, "weather_data_tampa", []byte(`{"location":{"name":"Tampa"}}`), 30*time.Minute)

	got, ok := s.Get(ctx, "weather_data_tampa")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != `{"location":{"name":"Tampa"}}` {
		t.Errorf("unexpected value %s", got)
	}
	if ttl := mr.TTL("weather_data_tampa"); ttl != 30*time.Minute {
		t.Errorf("expected ttl 30m, got %v", ttl)
	}

	mr.FastForward(31 * time.Minute)
	if _, ok := s.Get(ctx, "weather_data_tampa"); ok {
		t.Error("expected entry to expire after ttl")
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	s, mr := newRedisStore(t)
	mr.Close()

	ctx := context.Background()
	s.Set(ctx, "weather_data_tampa", []byte(`{}`), time.Minute)
	if _, ok := s.Get(ctx, "weather_data_tampa"); ok {
		t.Fatal("expected miss when redis is unreachable")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	value := []byte(`{"location":{"name":"Tampa"}}`)
	s.Set(ctx, "weather_data_tampa", value, time.Hour)
	value[0] = 'x'

	got, ok := s.Get(ctx, "weather_data_tampa")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != `{"location":{"name":"Tampa"}}` {
		t.Errorf("unexpected value %s", got)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	s.Set(ctx, "weather_data_tampa", []byte(`{}`), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := s.Get(ctx, "weather_data_tampa"); ok {
		t.Fatal("expected entry to expire")
	}
}
