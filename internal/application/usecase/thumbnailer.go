package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/domain/entity"
	"photovault/internal/domain/model"
	"photovault/internal/domain/repository/database"
	"photovault/internal/domain/repository/objstore"
	"photovault/pkg/logger"
)

// thumbnailContentType is the format every thumbnail is served as.
const thumbnailContentType = "image/jpeg"

// Resizer produces a bounding-box variant of an image, re-encoded to the
// thumbnail format. Implemented by the imaging package.
type Resizer interface {
	Thumbnail(original []byte, size int) ([]byte, error)
}

// Thumbnailer caches one resized variant per (original, size) pair. The
// cache key is deterministic, so concurrent generators converge on a single
// document and object instead of racing into duplicates.
type Thumbnailer struct {
	getter         abstraction.Getter
	thumbRetriever database.ThumbnailRetriever
	thumbWriter    database.ThumbnailWriter
	objUploader    objstore.Uploader
	objGetter      objstore.Getter
	resizer        Resizer
}

func NewThumbnailer(getter abstraction.Getter, thumbRetriever database.ThumbnailRetriever,
	thumbWriter database.ThumbnailWriter, objUploader objstore.Uploader, objGetter objstore.Getter,
	resizer Resizer,
) *Thumbnailer {
	return &Thumbnailer{
		getter:         getter,
		thumbRetriever: thumbRetriever,
		thumbWriter:    thumbWriter,
		objUploader:    objUploader,
		objGetter:      objGetter,
		resizer:        resizer,
	}
}

func thumbnailID(photoID string, size int) string {
	return fmt.Sprintf("%s-%d", photoID, size)
}

func (t *Thumbnailer) GetThumbnail(ctx context.Context, photoID string, size int) (*entity.Download, error) {
	if size <= 0 {
		return nil, entity.NewValidationError("thumbnail size must be positive, got %d", size)
	}

	key := thumbnailID(photoID, size)

	if cached, err := t.thumbRetriever.GetByID(ctx, key); err == nil {
		body, err := t.objGetter.Get(ctx, cached.ID)
		if err == nil {
			return &entity.Download{
				Body:        body,
				ContentType: cached.ContentType,
				Filename:    thumbnailFilename(photoID, size),
				Size:        cached.Length,
			}, nil
		}

		// Dangling cache entry; regenerate instead of failing the request.
		logger.Warn("cached thumbnail unreadable, regenerating", "id", key, "err", err)
	}

	return t.generate(ctx, photoID, size, key)
}

// generate resizes the original and writes the result through the cache.
// Both cache writes are best effort: the deterministic key means a later
// request simply overwrites, so a failed write costs a regeneration, not
// correctness.
func (t *Thumbnailer) generate(ctx context.Context, photoID string, size int, key string) (*entity.Download, error) {
	original, err := t.getter.GetOne(ctx, photoID)
	if err != nil {
		return nil, err
	}
	defer original.Body.Close()

	data, err := io.ReadAll(original.Body)
	if err != nil {
		logger.Error("original read failed during thumbnail generation", "id", photoID, "err", err)

		return nil, &entity.StorageError{Op: "read original", ID: photoID, Err: err}
	}

	resized, err := t.resizer.Thumbnail(data, size)
	if err != nil {
		logger.Warn("thumbnail generation failed, serving original", "id", photoID, "size", size, "err", err)

		return downloadFromBytes(data, original), nil
	}

	if err := t.objUploader.Upload(ctx, key, bytes.NewReader(resized),
		int64(len(resized)), thumbnailContentType); err != nil {
		logger.Warn("thumbnail object write failed, serving uncached bytes", "id", key, "err", err)

		return thumbnailDownload(resized, photoID, size), nil
	}

	thumbnail := &model.Thumbnail{
		ID:          key,
		OriginalID:  photoID,
		Size:        size,
		ContentType: thumbnailContentType,
		Length:      int64(len(resized)),
		GeneratedAt: time.Now(),
	}
	if err := t.thumbWriter.Upsert(ctx, thumbnail); err != nil {
		logger.Warn("thumbnail metadata write failed", "id", key, "err", err)
	}

	// Serve the bytes just generated; no round trip to re-read the cache.
	return thumbnailDownload(resized, photoID, size), nil
}

func thumbnailFilename(photoID string, size int) string {
	return fmt.Sprintf("%s-%d.jpg", photoID, size)
}

func thumbnailDownload(data []byte, photoID string, size int) *entity.Download {
	return &entity.Download{
		Body:        io.NopCloser(bytes.NewReader(data)),
		ContentType: thumbnailContentType,
		Filename:    thumbnailFilename(photoID, size),
		Size:        int64(len(data)),
	}
}

func downloadFromBytes(data []byte, original *entity.Download) *entity.Download {
	return &entity.Download{
		Body:        io.NopCloser(bytes.NewReader(data)),
		ContentType: original.ContentType,
		Filename:    original.Filename,
		Size:        int64(len(data)),
	}
}
