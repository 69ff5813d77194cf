package content

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"lingopress/internal/models"
	"lingopress/internal/storage"
)

// countingSource wraps a Source and counts Open calls.
type countingSource struct {
	storage.Source
	opens atomic.Int32
}

func (c *countingSource) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	c.opens.Add(1)
	return c.Source.Open(ctx, key)
}

// failingSource fails every read with a non-missing error.
type failingSource struct{}

func (failingSource) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("disk on fire")
}

// mapCache is an in-memory SharedCache.
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *mapCache) Set(_ context.Context, key string, html []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = html
}

func mustSlug(t *testing.T, raw string) models.ArticleSlug {
	t.Helper()
	s, err := models.ParseArticleSlug(raw)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func newSource() *countingSource {
	return &countingSource{Source: storage.NewFS(fstest.MapFS{
		"en/hello-world.md": {Data: []byte("# Hello\n\nWorld.")},
		"es/hola-mundo.md":  {Data: []byte("# Hola")},
	})}
}

func TestKey(t *testing.T) {
	if got := Key("es", mustSlug(t, "hola-mundo")); got != "es/hola-mundo.md" {
		t.Errorf("Key() = %q, want %q", got, "es/hola-mundo.md")
	}
}

func TestStoreGet(t *testing.T) {
	src := newSource()
	s := NewStore(src, nil, nil)
	ctx := context.Background()

	body, err := s.Get(ctx, "en", mustSlug(t, "hello-world"))
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if body == nil || !strings.Contains(body.HTML, "<h1") || !strings.Contains(body.HTML, "World.") {
		t.Fatalf("Get() = %+v, want compiled HTML", body)
	}

	// Second call is served from memory.
	if _, err := s.Get(ctx, "en", mustSlug(t, "hello-world")); err != nil {
		t.Fatal(err)
	}
	if n := src.opens.Load(); n != 1 {
		t.Errorf("source opened %d times, want 1", n)
	}
}

func TestStoreGet_Missing(t *testing.T) {
	s := NewStore(newSource(), nil, nil)

	// The Spanish body exists only under its Spanish slug.
	body, err := s.Get(context.Background(), "en", mustSlug(t, "hola-mundo"))
	if err != nil || body != nil {
		t.Errorf("Get(missing) = %+v, %v; want nil, nil", body, err)
	}
}

func TestStoreGet_CompileFailure(t *testing.T) {
	logs := &bytes.Buffer{}
	s := NewStore(newSource(), nil, slog.New(slog.NewTextHandler(logs, nil)))
	s.compile = func([]byte) (string, error) { return "", errors.New("bad markdown") }

	body, err := s.Get(context.Background(), "en", mustSlug(t, "hello-world"))
	if err != nil || body != nil {
		t.Errorf("Get(uncompilable) = %+v, %v; want nil, nil", body, err)
	}
	if !strings.Contains(logs.String(), "level=ERROR") || !strings.Contains(logs.String(), "key=en/hello-world.md") {
		t.Errorf("expected a compile error on the store logger, got %q", logs.String())
	}
}

func TestStoreGet_ReadFailure(t *testing.T) {
	s := NewStore(failingSource{}, nil, nil)

	if _, err := s.Get(context.Background(), "en", mustSlug(t, "hello-world")); err == nil {
		t.Error("Get() expected error for a failing source, got nil")
	}
}

func TestStoreGet_SharedCache(t *testing.T) {
	shared := &mapCache{data: map[string][]byte{
		"es/hola-mundo.md": []byte("<p>cached elsewhere</p>"),
	}}
	src := newSource()
	s := NewStore(src, shared, nil)
	ctx := context.Background()

	body, err := s.Get(ctx, "es", mustSlug(t, "hola-mundo"))
	if err != nil {
		t.Fatal(err)
	}
	if body.HTML != "<p>cached elsewhere</p>" {
		t.Errorf("HTML = %q, want the shared copy", body.HTML)
	}
	if n := src.opens.Load(); n != 0 {
		t.Errorf("source opened %d times, want 0", n)
	}

	// A compiled body is published to the shared cache.
	if _, err := s.Get(ctx, "en", mustSlug(t, "hello-world")); err != nil {
		t.Fatal(err)
	}
	if _, ok := shared.Get(ctx, "en/hello-world.md"); !ok {
		t.Error("compiled body was not stored in the shared cache")
	}
}

func TestStoreGet_Concurrent(t *testing.T) {
	src := newSource()
	s := NewStore(src, nil, nil)
	slug := mustSlug(t, "hello-world")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body, err := s.Get(context.Background(), "en", slug)
			if err != nil || body == nil {
				t.Errorf("Get() = %+v, %v", body, err)
				return
			}
			results[i] = body.HTML
		}()
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatalf("goroutine %d got %q, want %q", i, results[i], results[0])
		}
	}
	if src.opens.Load() == 0 {
		t.Error("source was never read")
	}
}
