package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

type PhotoRemover struct {
	db *Database
}

func NewPhotoRemover(db *Database) *PhotoRemover {
	return &PhotoRemover{db: db}
}

func (r *PhotoRemover) RemoveByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PhotoCollection)
	_, err := coll.DeleteOne(ctx, bson.M{"_id": id})

	return err
}

type ThumbnailRemover struct {
	db *Database
}

func NewThumbnailRemover(db *Database) *ThumbnailRemover {
	return &ThumbnailRemover{db: db}
}

func (r *ThumbnailRemover) RemoveByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ThumbnailCollection)
	_, err := coll.DeleteOne(ctx, bson.M{"_id": id})

	return err
}

func (r *ThumbnailRemover) RemoveByOriginal(ctx context.Context, originalID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ThumbnailCollection)
	_, err := coll.DeleteMany(ctx, bson.M{"original_id": originalID})

	return err
}
