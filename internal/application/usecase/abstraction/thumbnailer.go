package abstraction

import (
	"context"

	"photovault/internal/domain/entity"
)

type Thumbnailer interface {
	// GetThumbnail returns the cached thumbnail for (photoID, size),
	// generating and caching it on miss. Generation failures degrade to
	// serving the original photo bytes.
	GetThumbnail(ctx context.Context, photoID string, size int) (*entity.Download, error)
}
