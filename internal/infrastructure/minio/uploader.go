package minio

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

type Uploader struct {
	client *Client
	cfg    *UploaderConfig
}

func NewUploader(client *Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		client: client,
		cfg:    cfg,
	}
}

func (u *Uploader) Upload(ctx context.Context, objectName string, body io.Reader,
	size int64, contentType string,
) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	_, err := u.client.MinioClient.PutObject(ctx, u.client.Bucket, objectName, body, size,
		minio.PutObjectOptions{
			ContentType: contentType,
		})

	return err
}
