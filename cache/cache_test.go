package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c.Capacity() != 100 {
		t.Errorf("expected capacity 100, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
	if New[string, int](0).Capacity() != DefaultCapacity {
		t.Errorf("expected default capacity for 0")
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("expected (42, true), got (%d, %v)", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("expected overwrite to 7, got %d", val)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	createCalled := 0
	create := func() (int, error) {
		createCalled++
		return 100, nil
	}

	if v, err := c.GetOrCreate("key1", create); err != nil || v != 100 {
		t.Errorf("expected (100, nil), got (%d, %v)", v, err)
	}
	if v, err := c.GetOrCreate("key1", create); err != nil || v != 100 {
		t.Errorf("expected (100, nil), got (%d, %v)", v, err)
	}
	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}
	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("expected 1 hit / 1 miss, got %+v", st)
	}
}

func TestCacheGetOrCreateError(t *testing.T) {
	c := New[string, int](10)
	errBoom := errors.New("boom")

	if _, err := c.GetOrCreate("key1", func() (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed create should not be stored, len %d", c.Len())
	}
	if v, err := c.GetOrCreate("key1", func() (int, error) { return 7, nil }); err != nil || v != 7 {
		t.Errorf("expected (7, nil) after retry, got (%d, %v)", v, err)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3)

	// Touch 1 so 2 becomes the oldest.
	c.Get(1)
	c.Set(4, 4)

	if _, ok := c.Get(2); ok {
		t.Error("expected key 2 to be evicted")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected key %d to be present", k)
		}
	}
	if c.Stats().Evictions != 1 {
		t.Errorf("expected 1 eviction, got %d", c.Stats().Evictions)
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)
	if !c.Delete("a") {
		t.Error("expected Delete(a) = true")
	}
	if c.Delete("a") {
		t.Error("expected second Delete(a) = false")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Len())
	}
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("expected (3, true) after Clear, got (%d, %v)", v, ok)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](32)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := strconv.Itoa((g*7 + i) % 64)
				_, _ = c.GetOrCreate(k, func() (int, error) { return i, nil })
				c.Get(k)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 32 {
		t.Errorf("cache exceeded capacity: %d", c.Len())
	}
}
