package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if hit || data != nil {
		t.Errorf("Get() after Set = (%q, %v), want a miss", data, hit)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete() error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected miss before Set")
	}

	// Round trip
	want := []byte("png bytes")
	if err := c.Set(ctx, "artifact:abc", want, time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(got) != string(want) {
		t.Errorf("Get = %q, want %q", got, want)
	}

	// Delete
	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "artifact:abc")
	if hit {
		t.Error("expected miss after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "artifact:missing"); err != nil {
		t.Errorf("Delete missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Negative TTL is already expired at read time
	if err := c.Set(ctx, "dataset:old", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "dataset:old")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should be a miss")
	}

	// Zero TTL never expires
	if err := c.Set(ctx, "dataset:keep", []byte("fresh"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "dataset:keep")
	if !hit {
		t.Error("zero-TTL entry should not expire")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))

	if h2 := Hash([]byte("hello")); h2 != h1 {
		t.Errorf("Hash(same input) = %q and %q, want equal", h1, h2)
	}
	if h3 := Hash([]byte("world")); h3 == h1 {
		t.Errorf("Hash(different input) = %q, want a different digest", h3)
	}
	if len(h1) != 64 {
		t.Errorf("len(Hash()) = %d, want 64 hex characters", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	opts := DatasetKeyOpts{Points: 80, XMin: -2, XMax: 2, Seed: 42}
	dk := k.DatasetKey("demo", opts)
	if !strings.HasPrefix(dk, "dataset:") {
		t.Errorf("DatasetKey() = %q, want a dataset: prefix", dk)
	}
	if again := k.DatasetKey("demo", opts); again != dk {
		t.Errorf("DatasetKey(same opts) = %q and %q, want equal", dk, again)
	}
	reseeded := opts
	reseeded.Seed = 43
	if other := k.DatasetKey("demo", reseeded); other == dk {
		t.Error("DatasetKey(different seed) matches the original key, want distinct")
	}

	ak := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", FigType: "single"})
	if !strings.HasPrefix(ak, "artifact:") {
		t.Errorf("ArtifactKey() = %q, want an artifact: prefix", ak)
	}
	if other := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", FigType: "single"}); other == ak {
		t.Error("ArtifactKey(different format) matches the svg key, want distinct")
	}
	styled := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", FigType: "single", Styles: []string{"line", "scatter"}})
	if styled == ak {
		t.Error("ArtifactKey(with styles) matches the unstyled key, want distinct")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "gallery:123:")

	if dk := scoped.DatasetKey("demo", DatasetKeyOpts{Points: 80}); !strings.HasPrefix(dk, "gallery:123:dataset:") {
		t.Errorf("DatasetKey() = %q, want a gallery:123:dataset: prefix", dk)
	}
	if ak := scoped.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"}); !strings.HasPrefix(ak, "gallery:123:artifact:") {
		t.Errorf("ArtifactKey() = %q, want a gallery:123:artifact: prefix", ak)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// A nil inner keyer falls back to DefaultKeyer.
	scoped := NewScopedKeyer(nil, "prefix:")
	if key := scoped.DatasetKey("demo", DatasetKeyOpts{}); !strings.HasPrefix(key, "prefix:dataset:") {
		t.Errorf("DatasetKey() = %q, want a prefix:dataset: prefix", key)
	}
}

func TestRetryableError(t *testing.T) {
	if got := Retryable(nil); got != nil {
		t.Errorf("Retryable(nil) = %v, want nil", got)
	}

	err := Retryable(ErrUnavailable)
	if !IsRetryable(err) {
		t.Error("IsRetryable(Retryable(err)) = false, want true")
	}
	if got := err.Error(); got != ErrUnavailable.Error() {
		t.Errorf("Error() = %q, want %q", got, ErrUnavailable.Error())
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Error("errors.Is(err, ErrUnavailable) = false, want true")
	}
	if IsRetryable(errors.New("plain")) {
		t.Error("IsRetryable(plain error) = true, want false")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	t.Run("first try succeeds", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error { calls++; return nil })
		if err != nil || calls != 1 {
			t.Errorf("RetryWithBackoff() = (%v, %d calls), want (nil, 1 call)", err, calls)
		}
	})

	t.Run("non-retryable stops immediately", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		err := RetryWithBackoff(ctx, func() error { calls++; return boom })
		if err != boom || calls != 1 {
			t.Errorf("RetryWithBackoff() = (%v, %d calls), want (boom, 1 call)", err, calls)
		}
	})

	t.Run("retryable retries until success", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			if calls < 2 {
				return Retryable(ErrUnavailable)
			}
			return nil
		})
		if err != nil || calls != 2 {
			t.Errorf("RetryWithBackoff() = (%v, %d calls), want (nil, 2 calls)", err, calls)
		}
	})
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error { return Retryable(ErrUnavailable) })
	if err != context.Canceled {
		t.Errorf("RetryWithBackoff(canceled ctx) = %v, want context.Canceled", err)
	}
}
