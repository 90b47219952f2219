package cache_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/colplot/pkg/cache"
)

func ExampleFileCache() {
	// Create a file cache in a temp directory
	dir := filepath.Join(os.TempDir(), "colplot-example")
	c, err := cache.NewFileCache(dir)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer os.RemoveAll(dir)

	ctx := context.Background()

	// Store a rendered artifact with no expiration
	if err := c.Set(ctx, "artifact:demo", []byte("<svg/>"), 0); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Retrieve it
	data, ok, err := c.Get(ctx, "artifact:demo")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Found:", ok)
	fmt.Println("Data:", string(data))
	// Output:
	// Found: true
	// Data: <svg/>
}

func ExampleNullCache() {
	// NullCache never stores anything; every Get is a miss
	c := cache.NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		fmt.Println("Error:", err)
		return
	}
	_, ok, _ := c.Get(ctx, "key")
	fmt.Println("Found:", ok)
	// Output:
	// Found: false
}

func ExampleHash() {
	sum := cache.Hash([]byte("hello"))
	fmt.Println("Length:", len(sum))
	fmt.Println("Prefix:", sum[:8])
	// Output:
	// Length: 64
	// Prefix: 2cf24dba
}

func ExampleDefaultKeyer() {
	// Keys are prefix:sha256, so backends can tell the stages apart
	k := cache.NewDefaultKeyer()
	key := k.DatasetKey("demo", cache.DatasetKeyOpts{Points: 80, XMin: -2, XMax: 2, Seed: 42})

	prefix, hash, _ := strings.Cut(key, ":")
	fmt.Println("Prefix:", prefix)
	fmt.Println("Hash length:", len(hash))
	// Output:
	// Prefix: dataset
	// Hash length: 64
}
