package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit || data != nil {
		t.Errorf("Get() = (%q, %v), want miss", data, hit)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "wellsketch"))
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "plan"); hit {
		t.Fatal("Get() on empty cache = hit")
	}
	if err := c.Set(ctx, "plan", []byte(`{"title":"w"}`), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "plan")
	if err != nil || !hit {
		t.Fatalf("Get() = (%v, %v), want hit", hit, err)
	}
	if string(data) != `{"title":"w"}` {
		t.Errorf("Get() data = %s", data)
	}

	if err := c.Delete(ctx, "plan"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "plan"); hit {
		t.Error("Get() after Delete() = hit")
	}
	if err := c.Delete(ctx, "plan"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("Get() before expiry = miss")
	}

	now = now.Add(2 * time.Hour)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get() after expiry = hit")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry was not removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("Get() on corrupt entry = (%v, %v), want clean miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}
	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("Get() after Clear() = hit")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash() is not deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Hash() collides for different inputs")
	}
	if len(h1) != 64 {
		t.Errorf("len(Hash()) = %d, want 64", len(h1))
	}

	a, err := HashJSON(map[string]float64{"od": 6.75, "id": 6.25})
	if err != nil {
		t.Fatal(err)
	}
	b, _ := HashJSON(map[string]float64{"id": 6.25, "od": 6.75})
	if a != b {
		t.Error("HashJSON() depends on map order")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	l1 := k.LayoutKey("well", LayoutKeyOpts{HorizontalStretch: 4, VerticalStretch: 1.05})
	l2 := k.LayoutKey("well", LayoutKeyOpts{HorizontalStretch: 5, VerticalStretch: 1.05})
	if l1 == l2 {
		t.Error("LayoutKey() ignores stretch")
	}
	if !strings.HasPrefix(l1, "layout:") {
		t.Errorf("LayoutKey() = %q, want layout: prefix", l1)
	}

	a1 := k.ArtifactKey("plan", ArtifactKeyOpts{VizType: "section", Format: "svg"})
	a2 := k.ArtifactKey("plan", ArtifactKeyOpts{VizType: "section", Format: "png"})
	if a1 == a2 {
		t.Error("ArtifactKey() ignores format")
	}
	if a1 != k.ArtifactKey("plan", ArtifactKeyOpts{VizType: "section", Format: "svg"}) {
		t.Error("ArtifactKey() is not deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "v1.2.0:")
	key := scoped.ArtifactKey("plan", ArtifactKeyOpts{Format: "svg"})
	want := "v1.2.0:" + NewDefaultKeyer().ArtifactKey("plan", ArtifactKeyOpts{Format: "svg"})
	if key != want {
		t.Errorf("ArtifactKey() = %q, want %q", key, want)
	}
	if !strings.HasPrefix(scoped.LayoutKey("w", LayoutKeyOpts{}), "v1.2.0:layout:") {
		t.Error("LayoutKey() not prefixed")
	}
}
