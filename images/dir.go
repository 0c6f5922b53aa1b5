// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package images

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidName = errors.New("invalid image name")

// DirBucket keeps images on local disk and serves them under /images/.
type DirBucket struct {
	dir     string
	baseURL string
}

func NewDirBucket(dir, baseURL string) (*DirBucket, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}
	return &DirBucket{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func validName(name string) bool {
	return name != "" && name == filepath.Base(name) && !strings.HasPrefix(name, ".")
}

func (b *DirBucket) Put(_ context.Context, name string, data []byte, _ string) (string, error) {
	if !validName(name) {
		return "", ErrInvalidName
	}
	if err := os.WriteFile(filepath.Join(b.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return b.baseURL + "/images/" + name, nil
}

// ServeImage handles GET /images/{name}
func (b *DirBucket) ServeImage(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !validName(name) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(b.dir, name))
}
