// Package storage persists uploaded photos. The disk backend serves the
// single-host default; the S3 backend targets an S3-compatible object store.
package storage

import (
	"context"
	"io"
)

// PhotoStorage stores an uploaded photo under the given file name and returns
// the relative path recorded on the entry.
type PhotoStorage interface {
	Save(ctx context.Context, fileName string, r io.Reader) (string, error)
}
