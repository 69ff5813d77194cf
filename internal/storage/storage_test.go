package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
)

func TestDirOpen(t *testing.T) {
	src := NewFS(fstest.MapFS{
		"en/hello-world.md": {Data: []byte("# Hello")},
	})

	tests := []struct {
		name        string
		key         string
		want        string
		wantMissing bool
	}{
		{name: "existing", key: "en/hello-world.md", want: "# Hello"},
		{name: "leading slash", key: "/en/hello-world.md", want: "# Hello"},
		{name: "missing", key: "es/hello-world.md", wantMissing: true},
		{name: "escaping root", key: "../etc/passwd", wantMissing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadAll(context.Background(), src, tt.key)
			if tt.wantMissing {
				if !IsNotExist(err) {
					t.Fatalf("ReadAll(%q) error = %v, want not-exist", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadAll(%q) unexpected error: %v", tt.key, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadAll(%q) = %q, want %q", tt.key, data, tt.want)
			}
		})
	}
}

func TestNewS3_Disabled(t *testing.T) {
	c, err := NewS3("", "", "", "", "", "")
	if err != nil || c != nil {
		t.Errorf("NewS3 with empty config = %v, %v; want nil, nil", c, err)
	}
}

// fakeS3 serves path-style GetObject requests from an in-memory map.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]string
	paths   []string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.paths = append(f.paths, r.URL.Path)
	body, ok := f.objects[strings.TrimPrefix(r.URL.Path, "/")]
	f.mu.Unlock()

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !ok {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
			`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
		return
	}
	w.Header().Set("Content-Type", "text/markdown")
	_, _ = w.Write([]byte(body))
}

func TestS3Open(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{
		"content-bucket/site/en/hello-world.md": "# Hello from S3",
	}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	c, err := NewS3(srv.URL+"/", "eu-central-1", "key", "secret", "content-bucket", "/site/")
	if err != nil || c == nil {
		t.Fatalf("NewS3() = %v, %v", c, err)
	}

	data, err := ReadAll(context.Background(), c, "en/hello-world.md")
	if err != nil {
		t.Fatalf("ReadAll() unexpected error: %v", err)
	}
	if string(data) != "# Hello from S3" {
		t.Errorf("ReadAll() = %q, want %q", data, "# Hello from S3")
	}

	_, err = c.Open(context.Background(), "es/missing.md")
	if !IsNotExist(err) {
		t.Errorf("Open(missing) error = %v, want not-exist", err)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.paths) == 0 || fake.paths[0] != "/content-bucket/site/en/hello-world.md" {
		t.Errorf("first request path = %v, want path-style bucket/prefix/key", fake.paths)
	}
}
