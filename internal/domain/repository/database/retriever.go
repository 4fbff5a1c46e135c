package database

import (
	"context"

	"photovault/internal/domain/model"
)

type PhotoRetriever interface {
	GetByID(ctx context.Context, id string) (*model.Photo, error)
	// ExistingIDs returns the subset of ids that resolve to a stored photo,
	// in a single query.
	ExistingIDs(ctx context.Context, ids []string) ([]string, error)
}

type ThumbnailRetriever interface {
	GetByID(ctx context.Context, id string) (*model.Thumbnail, error)
	GetByOriginal(ctx context.Context, originalID string) ([]model.Thumbnail, error)
}
