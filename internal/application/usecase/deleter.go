package usecase

import (
	"context"

	"photovault/internal/domain/entity"
	"photovault/internal/domain/repository/database"
	"photovault/internal/domain/repository/objstore"
	"photovault/pkg/logger"
)

// Deleter removes photos together with every thumbnail derived from them.
type Deleter struct {
	photoLister    database.PhotoLister
	photoRemover   database.PhotoRemover
	thumbRetriever database.ThumbnailRetriever
	thumbRemover   database.ThumbnailRemover
	objRemover     objstore.Remover
}

func NewDeleter(photoLister database.PhotoLister, photoRemover database.PhotoRemover,
	thumbRetriever database.ThumbnailRetriever, thumbRemover database.ThumbnailRemover,
	objRemover objstore.Remover,
) *Deleter {
	return &Deleter{
		photoLister:    photoLister,
		photoRemover:   photoRemover,
		thumbRetriever: thumbRetriever,
		thumbRemover:   thumbRemover,
		objRemover:     objRemover,
	}
}

// DeleteOne cascades: thumbnail objects, thumbnail documents, then the
// original. Every step is idempotent, so a failed delete can be retried.
func (d *Deleter) DeleteOne(ctx context.Context, photoID string) error {
	if !wellFormedID(photoID) {
		return nil
	}

	thumbnails, err := d.thumbRetriever.GetByOriginal(ctx, photoID)
	if err != nil {
		logger.Error("thumbnail lookup failed during delete", "id", photoID, "err", err)

		return &entity.StorageError{Op: "list thumbnails", ID: photoID, Err: err}
	}

	for _, t := range thumbnails {
		if err := d.objRemover.Remove(ctx, t.ID); err != nil {
			logger.Error("thumbnail object delete failed", "id", t.ID, "original", photoID, "err", err)

			return &entity.StorageError{Op: "remove thumbnail object", ID: t.ID, Err: err}
		}
	}

	if err := d.thumbRemover.RemoveByOriginal(ctx, photoID); err != nil {
		logger.Error("thumbnail metadata delete failed", "original", photoID, "err", err)

		return &entity.StorageError{Op: "remove thumbnail metadata", ID: photoID, Err: err}
	}

	if err := d.objRemover.Remove(ctx, photoID); err != nil {
		logger.Error("photo object delete failed", "id", photoID, "err", err)

		return &entity.StorageError{Op: "remove object", ID: photoID, Err: err}
	}

	if err := d.photoRemover.RemoveByID(ctx, photoID); err != nil {
		logger.Error("photo metadata delete failed", "id", photoID, "err", err)

		return &entity.StorageError{Op: "remove metadata", ID: photoID, Err: err}
	}

	return nil
}

func (d *Deleter) DeleteAllForVisit(ctx context.Context, visitID string) error {
	photos, err := d.photoLister.GetByVisit(ctx, visitID)
	if err != nil {
		logger.Error("visit photo lookup failed during delete", "visit", visitID, "err", err)

		return &entity.StorageError{Op: "list visit photos", ID: visitID, Err: err}
	}

	for _, photo := range photos {
		if err := d.DeleteOne(ctx, photo.ID); err != nil {
			return err
		}
	}

	return nil
}
