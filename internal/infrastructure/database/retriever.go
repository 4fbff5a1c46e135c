package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photovault/internal/domain/model"
)

type PhotoRetriever struct {
	db *Database
}

func NewPhotoRetriever(db *Database) *PhotoRetriever {
	return &PhotoRetriever{db: db}
}

func (r *PhotoRetriever) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PhotoCollection)

	var photo model.Photo
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&photo); err != nil {
		return nil, err
	}

	return &photo, nil
}

// ExistingIDs answers a bulk existence check with one $in query.
func (r *PhotoRetriever) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PhotoCollection)

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	existing := make([]string, 0, len(docs))
	for _, doc := range docs {
		existing = append(existing, doc.ID)
	}

	return existing, nil
}

type ThumbnailRetriever struct {
	db *Database
}

func NewThumbnailRetriever(db *Database) *ThumbnailRetriever {
	return &ThumbnailRetriever{db: db}
}

func (r *ThumbnailRetriever) GetByID(ctx context.Context, id string) (*model.Thumbnail, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ThumbnailCollection)

	var thumbnail model.Thumbnail
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&thumbnail); err != nil {
		return nil, err
	}

	return &thumbnail, nil
}

func (r *ThumbnailRetriever) GetByOriginal(ctx context.Context, originalID string) ([]model.Thumbnail, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ThumbnailCollection)

	cursor, err := coll.Find(ctx, bson.M{"original_id": originalID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var thumbnails []model.Thumbnail
	if err := cursor.All(ctx, &thumbnails); err != nil {
		return nil, err
	}

	return thumbnails, nil
}
