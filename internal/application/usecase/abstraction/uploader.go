package abstraction

import (
	"context"

	"photovault/internal/domain/entity"
)

type Uploader interface {
	// SaveOne validates and stores a single photo, returning its assigned id.
	SaveOne(ctx context.Context, upload *entity.FileUpload, placeID, visitID string) (string, error)
	// SaveMany stores a batch all-or-nothing; ids come back in input order.
	SaveMany(ctx context.Context, uploads []*entity.FileUpload, placeID, visitID string) ([]string, error)
}
