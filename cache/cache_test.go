package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestCache_Basic(t *testing.T) {
	c := New[string, int](3)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if v, ok := c.Get(key); !ok || v != want {
			t.Errorf("Get(%s) = %d, %v; want %d, true", key, v, ok, want)
		}
	}
	if _, ok := c.Get("d"); ok {
		t.Error("Get(d) should return false for missing key")
	}
}

func TestCache_Eviction(t *testing.T) {
	c := New[string, int](2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("'b' should have been evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if c.Stats().Evicts != 1 {
		t.Errorf("Evicts = %d; want 1", c.Stats().Evicts)
	}
}

func TestCache_Update(t *testing.T) {
	c := New[string, int](2)

	c.Set("a", 1)
	c.Set("a", 10)

	if v, ok := c.Get("a"); !ok || v != 10 {
		t.Errorf("Get(a) = %d, %v; want 10, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Len())
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	c.Delete("missing")
	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) should return false after delete")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d; want 0", c.Len())
	}
	c.Set("c", 3)
	if v, _ := c.Get("c"); v != 3 {
		t.Error("cache unusable after Clear")
	}
}

func TestCache_DefaultCapacity(t *testing.T) {
	c := New[int, int](0)
	if got := c.Stats().Capacity; got != DefaultCapacity {
		t.Errorf("Capacity = %d; want %d", got, DefaultCapacity)
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	if v := c.GetOrSet("k", compute); v != 42 {
		t.Errorf("GetOrSet() = %d; want 42", v)
	}
	if v := c.GetOrSet("k", compute); v != 42 {
		t.Errorf("GetOrSet() = %d; want 42", v)
	}
	if calls != 1 {
		t.Errorf("compute called %d times; want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Loads != 1 {
		t.Errorf("Stats() = %+v; want 1 hit, 1 miss, 1 load", s)
	}
	if s.HitRate != 0.5 {
		t.Errorf("HitRate = %v; want 0.5", s.HitRate)
	}
}

func TestCache_GetOrLoad(t *testing.T) {
	c := New[string, string](4)
	errCompile := errors.New("compile failed")

	_, err := c.GetOrLoad("bad(", func() (string, error) { return "", errCompile })
	if !errors.Is(err, errCompile) {
		t.Fatalf("GetOrLoad() error = %v; want %v", err, errCompile)
	}
	if c.Len() != 0 {
		t.Error("failed loads must not be cached")
	}

	v, err := c.GetOrLoad("ok", func() (string, error) { return "compiled", nil })
	if err != nil || v != "compiled" {
		t.Fatalf("GetOrLoad() = %q, %v", v, err)
	}
	v, err = c.GetOrLoad("ok", func() (string, error) { return "", errCompile })
	if err != nil || v != "compiled" {
		t.Errorf("second GetOrLoad() = %q, %v; want the cached value", v, err)
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](64)
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := (g*500 + i) % 128
				c.GetOrSet(key, func() int { return key * 2 })
				if v, ok := c.Get(key); ok && v != key*2 {
					t.Errorf("Get(%d) = %d; want %d", key, v, key*2)
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Errorf("Len() = %d; exceeds capacity 64", c.Len())
	}
}

func BenchmarkCache_GetOrSet(b *testing.B) {
	c := New[int, int](1024)
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.GetOrSet(i%2048, func() int { return i })
			i++
		}
	})
}
