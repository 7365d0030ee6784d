package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestOpenRedis_Success(t *testing.T) {
	s := miniredis.RunT(t)

	c, err := OpenRedis(s.Addr(), 2)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.Set(ctx, "k", "v", 0).Err(); err != nil {
		t.Fatalf("SET err: %v", err)
	}
	v, err := c.Get(ctx, "k").Result()
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	if v != "v" {
		t.Fatalf("GET value = %q, want %q", v, "v")
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}

type quote struct {
	Max  int64  `json:"max"`
	Note string `json:"note"`
}

func TestJSONStore_RoundTripAndTTL(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := NewJSONStore(rdb, "elig:")
	ctx := context.Background()

	var got quote
	found, err := store.Get(ctx, "a", &got)
	if err != nil || found {
		t.Fatalf("miss expected, found=%v err=%v", found, err)
	}

	if err := store.Set(ctx, "a", quote{Max: 225101, Note: "ok"}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !s.Exists("elig:a") {
		t.Fatal("prefixed key not written")
	}

	found, err = store.Get(ctx, "a", &got)
	if err != nil || !found || got.Max != 225101 || got.Note != "ok" {
		t.Fatalf("hit expected, got=%+v found=%v err=%v", got, found, err)
	}

	s.FastForward(2 * time.Minute)
	found, _ = store.Get(ctx, "a", &got)
	if found {
		t.Fatal("entry should have expired")
	}
}
