package minio

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	BucketName    = "photos-test"
)

func setupMinio(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	client, err := New(&ClientConfig{
		AccessKey:         TestAccessKey,
		SecretKey:         TestSecretKey,
		Endpoint:          endpoint,
		Bucket:            BucketName,
		UseSSL:            false,
		ConnectionTimeout: 10000,
	})
	if err != nil {
		t.Fatal("Failed to create minio client:", err)
	}

	return client
}

func TestUploadAndGet(t *testing.T) {
	client := setupMinio(t)
	ctx := context.Background()

	uploader := NewUploader(client, &UploaderConfig{Timeout: 10000})
	getter := NewGetter(client)

	content := bytes.Repeat([]byte("photo-bytes-"), 512)
	require.NoError(t, uploader.Upload(ctx, "photo-1",
		bytes.NewReader(content), int64(len(content)), "image/jpeg"))

	// Bytes come back identical however many times the object is read.
	for range 2 {
		body, err := getter.Get(ctx, "photo-1")
		require.NoError(t, err)

		got, err := io.ReadAll(body)
		require.NoError(t, err)
		require.NoError(t, body.Close())
		assert.Equal(t, content, got)
	}
}

func TestGetMissingObject(t *testing.T) {
	client := setupMinio(t)

	body, err := NewGetter(client).Get(context.Background(), "does-not-exist")
	assert.Error(t, err)
	assert.Nil(t, body)
}

func TestRemove(t *testing.T) {
	client := setupMinio(t)
	ctx := context.Background()

	uploader := NewUploader(client, &UploaderConfig{Timeout: 10000})
	remover := NewRemover(client, &RemoverConfig{Timeout: 10000})
	getter := NewGetter(client)

	content := []byte("ephemeral")
	require.NoError(t, uploader.Upload(ctx, "photo-gone",
		bytes.NewReader(content), int64(len(content)), "image/jpeg"))

	require.NoError(t, remover.Remove(ctx, "photo-gone"))

	_, err := getter.Get(ctx, "photo-gone")
	assert.Error(t, err)

	// Removing an already absent object is not an error.
	require.NoError(t, remover.Remove(ctx, "photo-gone"))
}
