package model

import "time"

type Photo struct {
	ID          string    `bson:"_id"`
	Filename    string    `bson:"filename"`
	ContentType string    `bson:"content_type"`
	Size        int64     `bson:"size"`
	PlaceID     string    `bson:"place_id"`
	VisitID     string    `bson:"visit_id"`
	UploadedAt  time.Time `bson:"uploaded_at"`
}

type Thumbnail struct {
	ID          string    `bson:"_id"` // "<originalID>-<size>"
	OriginalID  string    `bson:"original_id"`
	Size        int       `bson:"size"`
	ContentType string    `bson:"content_type"`
	Length      int64     `bson:"length"`
	GeneratedAt time.Time `bson:"generated_at"`
}
