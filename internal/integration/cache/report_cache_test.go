package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
)

type cachedReport struct {
	Year  int    `json:"year"`
	Label string `json:"label"`
}

func newTestCache(t *testing.T) (adapter.ReportCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReportCache(client, logger), server
}

func TestReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get round trip", func(t *testing.T) {
		cache, _ := newTestCache(t)

		want := cachedReport{Year: 2025, Label: "trial balance"}
		if err := cache.Set(ctx, "report:2025:trial-balance:03", want, time.Minute); err != nil {
			t.Fatalf("set: %v", err)
		}

		var got cachedReport
		hit, err := cache.Get(ctx, "report:2025:trial-balance:03", &got)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !hit {
			t.Fatal("expected cache hit")
		}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("missing key is a miss, not an error", func(t *testing.T) {
		cache, _ := newTestCache(t)

		var got cachedReport
		hit, err := cache.Get(ctx, "report:2025:balance-sheet:2025-03-31", &got)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if hit {
			t.Fatal("expected cache miss")
		}
	})

	t.Run("unreadable payload is a miss, not an error", func(t *testing.T) {
		cache, server := newTestCache(t)

		if err := server.Set("report:2025:cashflow-matrix", "not json"); err != nil {
			t.Fatalf("seed raw value: %v", err)
		}

		var got cachedReport
		hit, err := cache.Get(ctx, "report:2025:cashflow-matrix", &got)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if hit {
			t.Fatal("expected miss for unreadable payload")
		}
	})

	t.Run("entries expire with their ttl", func(t *testing.T) {
		cache, server := newTestCache(t)

		if err := cache.Set(ctx, "report:2025:trial-balance:00", cachedReport{Year: 2025}, time.Minute); err != nil {
			t.Fatalf("set: %v", err)
		}

		server.FastForward(2 * time.Minute)

		var got cachedReport
		hit, err := cache.Get(ctx, "report:2025:trial-balance:00", &got)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if hit {
			t.Fatal("expected expired entry to miss")
		}
	})

	t.Run("invalidate year removes only that year", func(t *testing.T) {
		cache, _ := newTestCache(t)

		keys2025 := []string{
			"report:2025:trial-balance:03",
			"report:2025:balance-sheet:2025-03-31",
			"report:2025:cashflow-matrix",
		}
		for _, key := range keys2025 {
			if err := cache.Set(ctx, key, cachedReport{Year: 2025}, time.Hour); err != nil {
				t.Fatalf("set %s: %v", key, err)
			}
		}
		if err := cache.Set(ctx, "report:2024:cashflow-matrix", cachedReport{Year: 2024}, time.Hour); err != nil {
			t.Fatalf("set 2024 key: %v", err)
		}

		if err := cache.InvalidateYear(ctx, 2025); err != nil {
			t.Fatalf("invalidate year: %v", err)
		}

		var got cachedReport
		for _, key := range keys2025 {
			hit, err := cache.Get(ctx, key, &got)
			if err != nil {
				t.Fatalf("get %s: %v", key, err)
			}
			if hit {
				t.Errorf("expected %s invalidated", key)
			}
		}

		hit, err := cache.Get(ctx, "report:2024:cashflow-matrix", &got)
		if err != nil {
			t.Fatalf("get 2024 key: %v", err)
		}
		if !hit {
			t.Error("expected 2024 key untouched")
		}
	})

	t.Run("invalidating an empty year is a no-op", func(t *testing.T) {
		cache, _ := newTestCache(t)

		if err := cache.InvalidateYear(ctx, 2030); err != nil {
			t.Fatalf("invalidate year: %v", err)
		}
	})
}
