package database

import (
	"context"

	"photovault/internal/domain/model"
)

type PhotoWriter interface {
	Write(ctx context.Context, photo *model.Photo) error
}

// ThumbnailWriter upserts keyed by the thumbnail id, so concurrent
// generators for the same (original, size) pair converge on one document.
type ThumbnailWriter interface {
	Upsert(ctx context.Context, thumbnail *model.Thumbnail) error
}
