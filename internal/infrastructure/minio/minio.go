package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"photovault/pkg/logger"
)

type Client struct {
	MinioClient *minio.Client
	Bucket      string
}

func New(cfg *ClientConfig) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          cfg.UseSSL,
		TrailingHeaders: true,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		MinioClient: client,
		Bucket:      cfg.Bucket,
	}

	if err := c.ensureBucket(cfg); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) ensureBucket(cfg *ClientConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	exists, err := c.MinioClient.BucketExists(ctx, c.Bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return c.MinioClient.MakeBucket(ctx, c.Bucket, minio.MakeBucketOptions{})
}
