package cli

import (
	"context"
	"testing"

	"github.com/matzehuels/colplot/pkg/cache"
	"github.com/matzehuels/colplot/pkg/gallery"
)

func TestServerURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":8080", "http://localhost:8080"},
		{"0.0.0.0:9000", "http://0.0.0.0:9000"},
		{"example.com:80", "http://example.com:80"},
	}
	for _, tt := range tests {
		if got := serverURL(tt.addr); got != tt.want {
			t.Errorf("serverURL(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestServeCacheNoCache(t *testing.T) {
	c, desc, err := serveCache(context.Background(), &serveOpts{noCache: true})
	if err != nil {
		t.Fatalf("serveCache error: %v", err)
	}
	defer c.Close()

	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("serveCache with noCache = %T, want *cache.NullCache", c)
	}
	if desc != "disabled" {
		t.Errorf("cache description = %q, want %q", desc, "disabled")
	}
}

func TestServeCacheDir(t *testing.T) {
	dir := t.TempDir()
	c, desc, err := serveCache(context.Background(), &serveOpts{cacheDir: dir})
	if err != nil {
		t.Fatalf("serveCache error: %v", err)
	}
	defer c.Close()

	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("serveCache with cacheDir = %T, want *cache.FileCache", c)
	}
	if desc != "file "+dir {
		t.Errorf("cache description = %q, want %q", desc, "file "+dir)
	}
}

func TestServeStoreMemory(t *testing.T) {
	s, desc, err := serveStore(context.Background(), &serveOpts{})
	if err != nil {
		t.Fatalf("serveStore error: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*gallery.MemoryStore); !ok {
		t.Errorf("serveStore = %T, want *gallery.MemoryStore", s)
	}
	if desc != "memory" {
		t.Errorf("store description = %q, want %q", desc, "memory")
	}
}
