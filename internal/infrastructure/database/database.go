package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PhotoCollection     = "photos"
	ThumbnailCollection = "thumbnails"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initPhotoCollection(db); err != nil {
		return nil, err
	}

	if err := initThumbnailCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initPhotoCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": PhotoCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "filename", "content_type", "size", "place_id", "visit_id", "uploaded_at"},
			"properties": bson.M{
				"_id": bson.M{
					"bsonType":    "string",
					"minLength":   36,
					"maxLength":   36,
					"description": "must be a UUID string",
				},
				"filename":     bson.M{"bsonType": "string"},
				"content_type": bson.M{"bsonType": "string"},
				"size":         bson.M{"bsonType": "long"},
				"place_id":     bson.M{"bsonType": "string"},
				"visit_id":     bson.M{"bsonType": "string"},
				"uploaded_at":  bson.M{"bsonType": "date"},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, PhotoCollection, collOpts)
	if err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(PhotoCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "visit_id", Value: 1}},
	})

	return err
}

func initThumbnailCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": ThumbnailCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "original_id", "size", "content_type", "length", "generated_at"},
			"properties": bson.M{
				"_id":          bson.M{"bsonType": "string"},
				"original_id":  bson.M{"bsonType": "string"},
				"size":         bson.M{"bsonType": "int"},
				"content_type": bson.M{"bsonType": "string"},
				"length":       bson.M{"bsonType": "long"},
				"generated_at": bson.M{"bsonType": "date"},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, ThumbnailCollection, collOpts)
	if err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(ThumbnailCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "original_id", Value: 1}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
