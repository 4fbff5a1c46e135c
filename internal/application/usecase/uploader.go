package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"photovault/internal/application/validator"
	"photovault/internal/domain/entity"
	"photovault/internal/domain/model"
	"photovault/internal/domain/repository/broker"
	"photovault/internal/domain/repository/database"
	"photovault/internal/domain/repository/objstore"
	"photovault/pkg/logger"
)

type Uploader struct {
	validator   *validator.Validator
	writer      database.PhotoWriter
	dbRemover   database.PhotoRemover
	objUploader objstore.Uploader
	objRemover  objstore.Remover
	publisher   broker.Publisher
	threshold   int
	workers     int
}

func NewUploader(v *validator.Validator, writer database.PhotoWriter, dbRemover database.PhotoRemover,
	objUploader objstore.Uploader, objRemover objstore.Remover, publisher broker.Publisher,
	parallelThreshold, workers int,
) *Uploader {
	if parallelThreshold < 1 {
		parallelThreshold = 2
	}
	if workers < 1 {
		workers = 4
	}

	return &Uploader{
		validator:   v,
		writer:      writer,
		dbRemover:   dbRemover,
		objUploader: objUploader,
		objRemover:  objRemover,
		publisher:   publisher,
		threshold:   parallelThreshold,
		workers:     workers,
	}
}

func (u *Uploader) SaveOne(ctx context.Context, upload *entity.FileUpload,
	placeID, visitID string,
) (string, error) {
	id, err := u.storeOne(ctx, upload, placeID, visitID)
	if err != nil {
		return "", err
	}

	u.announce(ctx, id)

	return id, nil
}

func (u *Uploader) SaveMany(ctx context.Context, uploads []*entity.FileUpload,
	placeID, visitID string,
) ([]string, error) {
	if len(uploads) == 0 {
		return []string{}, nil
	}

	ids := make([]string, len(uploads))
	errs := make([]error, len(uploads))

	if len(uploads) < u.threshold {
		for i, upload := range uploads {
			ids[i], errs[i] = u.storeOne(ctx, upload, placeID, visitID)
		}
	} else {
		g := &errgroup.Group{}
		g.SetLimit(u.workers)
		for i, upload := range uploads {
			g.Go(func() error {
				ids[i], errs[i] = u.storeOne(ctx, upload, placeID, visitID)

				return nil
			})
		}
		_ = g.Wait()
	}

	failed := 0
	var first error
	for _, err := range errs {
		if err != nil {
			failed++
			if first == nil {
				first = err
			}
		}
	}

	if failed > 0 {
		u.compensate(ctx, ids)

		err := &entity.BatchUploadError{Failed: failed, Total: len(uploads), First: first}
		logger.Error("batch upload failed", "visit", visitID, "failed", failed, "total", len(uploads), "err", first)

		return nil, err
	}

	for _, id := range ids {
		u.announce(ctx, id)
	}

	return ids, nil
}

// storeOne validates, writes the bytes, then the metadata document. A
// metadata failure removes the already-written object so no orphan remains.
func (u *Uploader) storeOne(ctx context.Context, upload *entity.FileUpload,
	placeID, visitID string,
) (string, error) {
	if err := u.validator.Validate(upload); err != nil {
		return "", err
	}

	id := uuid.New().String()

	if err := u.objUploader.Upload(ctx, id, upload.Body, upload.Size, upload.ContentType); err != nil {
		storageErr := &entity.StorageError{Op: "upload", ID: id, Err: err}
		logger.Error("object upload failed", "id", id, "visit", visitID, "err", err)

		return "", storageErr
	}

	photo := &model.Photo{
		ID:          id,
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		PlaceID:     placeID,
		VisitID:     visitID,
		UploadedAt:  time.Now(),
	}

	if err := u.writer.Write(ctx, photo); err != nil {
		if removeErr := u.objRemover.Remove(ctx, id); removeErr != nil {
			logger.Error("failed to remove object after metadata write failed", "id", id, "err", removeErr)
		}

		storageErr := &entity.StorageError{Op: "write metadata", ID: id, Err: err}
		logger.Error("metadata write failed", "id", id, "visit", visitID, "err", err)

		return "", storageErr
	}

	return id, nil
}

// compensate deletes every item of a failed batch that did get stored.
func (u *Uploader) compensate(ctx context.Context, ids []string) {
	for _, id := range ids {
		if id == "" {
			continue
		}

		if err := u.objRemover.Remove(ctx, id); err != nil {
			logger.Error("failed to remove object while rolling back batch", "id", id, "err", err)
		}
		if err := u.dbRemover.RemoveByID(ctx, id); err != nil {
			logger.Error("failed to remove metadata while rolling back batch", "id", id, "err", err)
		}
	}
}

// announce publishes the id for async post-processing. The event only feeds
// thumbnail prewarming, so a publish failure never fails the upload.
func (u *Uploader) announce(ctx context.Context, id string) {
	if u.publisher == nil {
		return
	}

	if err := u.publisher.Publish(ctx, id); err != nil {
		logger.Warn("failed to publish upload event", "id", id, "err", err)
	}
}
