package objstore

import (
	"context"
	"io"
)

type Uploader interface {
	Upload(ctx context.Context, objectName string, body io.Reader, size int64, contentType string) error
}
