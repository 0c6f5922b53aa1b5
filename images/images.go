// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package images

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxImageSize caps nominee image uploads.
const MaxImageSize = 5 << 20

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = fmt.Errorf("image larger than %d bytes", MaxImageSize)
	ErrEmpty           = errors.New("empty image")
)

var allowedTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// Bucket stores nominee images and returns the URL they are served from.
type Bucket interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// Image is an upload that passed validation.
type Image struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Validate sniffs the upload's content type. The declared type is ignored.
func Validate(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmpty
	}
	if len(data) > MaxImageSize {
		return Image{}, ErrTooLarge
	}

	mtype := mimetype.Detect(data)
	for _, allowed := range allowedTypes {
		if mtype.Is(allowed) {
			return Image{Data: data, ContentType: mtype.String(), Extension: mtype.Extension()}, nil
		}
	}
	return Image{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mtype.String())
}

// ObjectName builds a unique object name for a nominee's image.
func ObjectName(nomineeID, extension string) string {
	return nomineeID + "-" + uuid.NewString()[:8] + extension
}
