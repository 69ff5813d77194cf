// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides read-only object sources for the corpus files
// and article bodies: a local directory and an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Source opens objects by slash-separated key. Implementations report a
// missing object with an error wrapping fs.ErrNotExist.
type Source interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// IsNotExist reports whether err means the requested object is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Dir serves objects from a filesystem tree.
type Dir struct {
	fsys fs.FS
	name string
}

// NewDir returns a Source rooted at the directory root.
func NewDir(root string) *Dir {
	return &Dir{fsys: os.DirFS(root), name: root}
}

// NewFS returns a Source over an arbitrary fs.FS, e.g. an embedded tree or
// an fstest.MapFS in tests.
func NewFS(fsys fs.FS) *Dir {
	return &Dir{fsys: fsys, name: "fs"}
}

// Open opens key within the tree. Keys escaping the root are rejected.
func (d *Dir) Open(_ context.Context, key string) (io.ReadCloser, error) {
	key = path.Clean(strings.TrimLeft(key, "/"))
	if !fs.ValidPath(key) {
		return nil, fmt.Errorf("dir open %q: %w", key, fs.ErrNotExist)
	}
	f, err := d.fsys.Open(key)
	if err != nil {
		return nil, fmt.Errorf("dir open %q: %w", key, err)
	}
	return f, nil
}

// String identifies the source in logs.
func (d *Dir) String() string {
	return "dir:" + d.name
}

// ReadAll opens key on src and reads it fully.
func ReadAll(ctx context.Context, src Source, key string) ([]byte, error) {
	rc, err := src.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return data, nil
}
