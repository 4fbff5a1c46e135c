package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photovault/internal/domain/entity"
	"photovault/internal/presentation"
)

func getContext(id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/photos/"+id, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames(presentation.IDParam)
	c.SetParamValues(id)

	return c, rec
}

func TestHandleGetStreamsPhoto(t *testing.T) {
	t.Parallel()

	content := []byte("original photo bytes")
	getter := &stubGetter{
		getOne: func(_ context.Context, photoID string) (*entity.Download, error) {
			assert.Equal(t, "photo-1", photoID)

			return &entity.Download{
				Body:        io.NopCloser(bytes.NewReader(content)),
				ContentType: "image/jpeg",
				Filename:    "beach.jpg",
				Size:        int64(len(content)),
			}, nil
		},
	}

	c, rec := getContext("photo-1")
	require.NoError(t, NewGetHandler(getter).HandleGet(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, content, rec.Body.Bytes())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "image/jpeg")
	assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
	assert.Equal(t, `"photo-1"`, rec.Header().Get("ETag"))
	assert.Equal(t, `inline; filename="beach.jpg"`, rec.Header().Get("Content-Disposition"))
}

func TestHandleGetNotFound(t *testing.T) {
	t.Parallel()

	getter := &stubGetter{
		getOne: func(context.Context, string) (*entity.Download, error) {
			return nil, &entity.NotFoundError{ID: "missing-id"}
		},
	}

	c, rec := getContext("missing-id")
	require.NoError(t, NewGetHandler(getter).HandleGet(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(presentation.ReasonTag))
}

func TestHandleGetStorageFailure(t *testing.T) {
	t.Parallel()

	getter := &stubGetter{
		getOne: func(context.Context, string) (*entity.Download, error) {
			return nil, &entity.StorageError{Op: "get object", ID: "photo-1"}
		},
	}

	c, rec := getContext("photo-1")
	require.NoError(t, NewGetHandler(getter).HandleGet(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
