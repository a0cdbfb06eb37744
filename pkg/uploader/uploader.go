// Package uploader defines the pluggable image-upload collaborator used by
// the customer mutations: accept a blob, return a stable URL.
package uploader

import (
	"context"
	"io"
)

// Uploader stores an image and returns the URL to persist on the customer row.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename, contentType string) (string, error)
}

// Placeholder ignores the blob and always resolves to a fixed static path.
// It is the default collaborator until a real storage backend is configured.
type Placeholder struct {
	URL string
}

func (p Placeholder) Upload(context.Context, io.Reader, string, string) (string, error) {
	return p.URL, nil
}

var _ Uploader = Placeholder{}
