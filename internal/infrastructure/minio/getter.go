package minio

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

type Getter struct {
	client *Client
}

func NewGetter(client *Client) *Getter {
	return &Getter{client: client}
}

// Get opens the object for streaming. Stat forces the round trip so a
// missing or unreadable object surfaces here instead of on first read.
// No timeout is layered on ctx: cancelling it would kill the stream while
// the caller is still copying from it.
func (g *Getter) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	obj, err := g.client.MinioClient.GetObject(ctx, g.client.Bucket, objectName,
		minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()

		return nil, err
	}

	return obj, nil
}
