package cache

import (
	"testing"
	"time"
)

// TestTTLStore_GetSet は鮮度ウィンドウ内のヒットと期限切れのミスを検証します。
func TestTTLStore_GetSet(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := NewTTLStore[string](10 * time.Minute).WithClock(clock)

	if _, _, ok := store.Get("finance"); ok {
		t.Fatal("expected miss on empty store")
	}

	store.Set("finance", "payload")

	data, cachedAt, ok := store.Get("finance")
	if !ok {
		t.Fatal("expected hit inside the freshness window")
	}
	if data != "payload" {
		t.Errorf("expected %q, got %q", "payload", data)
	}
	if !cachedAt.Equal(now) {
		t.Errorf("expected cachedAt %v, got %v", now, cachedAt)
	}

	// ウィンドウちょうどで期限切れになる
	now = now.Add(10 * time.Minute)
	if _, _, ok := store.Get("finance"); ok {
		t.Error("expected miss after the freshness window elapsed")
	}

	// 期限切れエントリは残り続け、Lenに数えられる
	if store.Len() != 1 {
		t.Errorf("expected stale entry to remain, Len = %d", store.Len())
	}
}

// TestTTLStore_Overwrite は上書きで取得時刻が更新されることを検証します。
func TestTTLStore_Overwrite(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := NewTTLStore[int](5 * time.Minute).WithClock(clock)

	store.Set("stocks", 1)
	now = now.Add(6 * time.Minute)
	store.Set("stocks", 2)

	data, cachedAt, ok := store.Get("stocks")
	if !ok {
		t.Fatal("expected hit after overwrite")
	}
	if data != 2 {
		t.Errorf("expected overwritten value 2, got %d", data)
	}
	if !cachedAt.Equal(now) {
		t.Errorf("expected cachedAt to move forward, got %v", cachedAt)
	}
	if store.Len() != 1 {
		t.Errorf("expected a single entry, Len = %d", store.Len())
	}
}

// TestTTLStore_Delete は明示的な破棄を検証します。
func TestTTLStore_Delete(t *testing.T) {
	t.Parallel()

	store := NewTTLStore[string](10 * time.Minute)
	store.Set("finance", "payload")
	store.Delete("finance")

	if _, _, ok := store.Get("finance"); ok {
		t.Error("expected miss after Delete")
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, Len = %d", store.Len())
	}

	// 存在しないキーの削除は何もしない
	store.Delete("missing")
}

// TestNewTTLStore_Defaults はTTLのデフォルト値を検証します。
func TestNewTTLStore_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ttl      time.Duration
		expected time.Duration
	}{
		{name: "zero ttl uses default", ttl: 0, expected: 5 * time.Minute},
		{name: "negative ttl uses default", ttl: -time.Minute, expected: 5 * time.Minute},
		{name: "custom ttl preserved", ttl: time.Hour, expected: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := NewTTLStore[string](tt.ttl)
			if store.TTL() != tt.expected {
				t.Errorf("expected TTL %v, got %v", tt.expected, store.TTL())
			}
		})
	}
}
