package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photovault/internal/domain/model"
)

type PhotoWriter struct {
	db *Database
}

func NewPhotoWriter(db *Database) *PhotoWriter {
	return &PhotoWriter{db: db}
}

func (w *PhotoWriter) Write(ctx context.Context, photo *model.Photo) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(PhotoCollection)

	_, err := coll.InsertOne(ctx, photo)

	return err
}

type ThumbnailWriter struct {
	db *Database
}

func NewThumbnailWriter(db *Database) *ThumbnailWriter {
	return &ThumbnailWriter{db: db}
}

// Upsert replaces any existing document with the same id. Two concurrent
// generators for one (original, size) pair end up with a single document.
func (w *ThumbnailWriter) Upsert(ctx context.Context, thumbnail *model.Thumbnail) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(ThumbnailCollection)

	_, err := coll.ReplaceOne(ctx, bson.M{"_id": thumbnail.ID}, thumbnail,
		options.Replace().SetUpsert(true))

	return err
}
