package container

import (
	"testing"
	"time"
)

func TestLruCacheEviction(t *testing.T) {
	lru := NewLruCache[string, int](2)
	lru.Put("a", 1, 0)
	lru.Put("b", 2, 0)
	// 访问 a 让 b 成为最久未使用
	if _, ok := lru.Get("a"); !ok {
		t.Fatal("get a should hit")
	}
	lru.Put("c", 3, 0)

	if _, ok := lru.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	if val, ok := lru.Get("a"); !ok || val != 1 {
		t.Fatalf("a should survive, got %d ok=%v", val, ok)
	}
	if val, ok := lru.Get("c"); !ok || val != 3 {
		t.Fatalf("c should be cached, got %d ok=%v", val, ok)
	}
}

func TestLruCacheUpdate(t *testing.T) {
	lru := NewLruCache[string, int](2)
	lru.Put("a", 1, 0)
	lru.Put("a", 10, 0)

	if lru.Len() != 1 {
		t.Fatalf("update must not duplicate entry, len=%d", lru.Len())
	}
	if val, _ := lru.Get("a"); val != 10 {
		t.Fatalf("update did not take effect, got %d", val)
	}
}

func TestLruCacheExpiration(t *testing.T) {
	lru := NewLruCache[string, int](4)
	lru.Put("expired", 1, time.Now().Add(-time.Millisecond).UnixNano())
	lru.Put("forever", 2, 0)
	lru.Put("later", 3, time.Now().Add(time.Hour).UnixNano())

	if _, ok := lru.Get("expired"); ok {
		t.Fatal("expired entry should miss")
	}
	if _, ok := lru.Get("forever"); !ok {
		t.Fatal("expireAt 0 means no expiration")
	}
	if _, ok := lru.Get("later"); !ok {
		t.Fatal("future expiration should hit")
	}
	// 过期节点被惰性删除
	if lru.Len() != 2 {
		t.Fatalf("len expected 2, got %d", lru.Len())
	}
}

func TestLruCacheRemove(t *testing.T) {
	lru := NewLruCache[string, int](2)
	lru.Put("a", 1, 0)
	lru.Remove("a")
	lru.Remove("missing")

	if _, ok := lru.Get("a"); ok {
		t.Fatal("removed entry should miss")
	}
	if lru.Len() != 0 {
		t.Fatalf("len expected 0, got %d", lru.Len())
	}
}
