package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"photovault/internal/domain/entity"
	"photovault/internal/domain/repository/database"
	"photovault/internal/domain/repository/objstore"
	"photovault/pkg/logger"
)

// Getter streams stored photos back out of the blob store.
type Getter struct {
	retriever database.PhotoRetriever
	objGetter objstore.Getter
}

func NewGetter(retriever database.PhotoRetriever, objGetter objstore.Getter) *Getter {
	return &Getter{
		retriever: retriever,
		objGetter: objGetter,
	}
}

func (g *Getter) GetOne(ctx context.Context, photoID string) (*entity.Download, error) {
	if !wellFormedID(photoID) {
		return nil, &entity.NotFoundError{ID: photoID}
	}

	photo, err := g.retriever.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &entity.NotFoundError{ID: photoID}
		}

		logger.Error("metadata lookup failed", "id", photoID, "err", err)

		return nil, &entity.StorageError{Op: "get metadata", ID: photoID, Err: err}
	}

	body, err := g.objGetter.Get(ctx, photo.ID)
	if err != nil {
		logger.Error("object open failed", "id", photoID, "err", err)

		return nil, &entity.StorageError{Op: "get object", ID: photoID, Err: err}
	}

	return &entity.Download{
		Body:        body,
		ContentType: photo.ContentType,
		Filename:    photo.Filename,
		Size:        photo.Size,
	}, nil
}
