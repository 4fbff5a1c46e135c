package database

import "context"

type PhotoRemover interface {
	RemoveByID(ctx context.Context, id string) error
}

type ThumbnailRemover interface {
	RemoveByID(ctx context.Context, id string) error
	RemoveByOriginal(ctx context.Context, originalID string) error
}
