package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photovault/internal/domain/model"
)

type PhotoLister struct {
	db *Database
}

func NewPhotoLister(db *Database) *PhotoLister {
	return &PhotoLister{db: db}
}

func (l *PhotoLister) GetByVisit(ctx context.Context, visitID string) ([]model.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(PhotoCollection)

	cursor, err := coll.Find(ctx, bson.M{"visit_id": visitID},
		options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var photos []model.Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}

	return photos, nil
}
