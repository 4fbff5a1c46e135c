package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	"photovault/internal/domain/model"
)

// fakePhotoDB is an in-memory stand-in for the photo metadata collection.
type fakePhotoDB struct {
	mu           sync.Mutex
	photos       map[string]model.Photo
	failFilename string // Write fails for photos with this filename
}

func newFakePhotoDB() *fakePhotoDB {
	return &fakePhotoDB{photos: make(map[string]model.Photo)}
}

func (f *fakePhotoDB) Write(_ context.Context, photo *model.Photo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failFilename != "" && photo.Filename == f.failFilename {
		return errors.New("simulated write failure")
	}

	f.photos[photo.ID] = *photo

	return nil
}

func (f *fakePhotoDB) GetByID(_ context.Context, id string) (*model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	photo, ok := f.photos[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return &photo, nil
}

func (f *fakePhotoDB) ExistingIDs(_ context.Context, ids []string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var existing []string
	for _, id := range ids {
		if _, ok := f.photos[id]; ok {
			existing = append(existing, id)
		}
	}

	return existing, nil
}

func (f *fakePhotoDB) RemoveByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.photos, id)

	return nil
}

func (f *fakePhotoDB) GetByVisit(_ context.Context, visitID string) ([]model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var photos []model.Photo
	for _, photo := range f.photos {
		if photo.VisitID == visitID {
			photos = append(photos, photo)
		}
	}

	return photos, nil
}

// fakeThumbDB is an in-memory stand-in for the thumbnail metadata collection.
type fakeThumbDB struct {
	mu     sync.Mutex
	thumbs map[string]model.Thumbnail
}

func newFakeThumbDB() *fakeThumbDB {
	return &fakeThumbDB{thumbs: make(map[string]model.Thumbnail)}
}

func (f *fakeThumbDB) Upsert(_ context.Context, thumbnail *model.Thumbnail) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.thumbs[thumbnail.ID] = *thumbnail

	return nil
}

func (f *fakeThumbDB) GetByID(_ context.Context, id string) (*model.Thumbnail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	thumbnail, ok := f.thumbs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return &thumbnail, nil
}

func (f *fakeThumbDB) GetByOriginal(_ context.Context, originalID string) ([]model.Thumbnail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var thumbnails []model.Thumbnail
	for _, thumbnail := range f.thumbs {
		if thumbnail.OriginalID == originalID {
			thumbnails = append(thumbnails, thumbnail)
		}
	}

	return thumbnails, nil
}

func (f *fakeThumbDB) RemoveByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.thumbs, id)

	return nil
}

func (f *fakeThumbDB) RemoveByOriginal(_ context.Context, originalID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, thumbnail := range f.thumbs {
		if thumbnail.OriginalID == originalID {
			delete(f.thumbs, id)
		}
	}

	return nil
}

// fakeObjStore is an in-memory stand-in for the object store.
type fakeObjStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
}

func newFakeObjStore() *fakeObjStore {
	return &fakeObjStore{objects: make(map[string][]byte)}
}

func (f *fakeObjStore) Upload(_ context.Context, objectName string, body io.Reader, _ int64, _ string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectName] = data

	return nil
}

func (f *fakeObjStore) Get(_ context.Context, objectName string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.objects[objectName]
	if !ok {
		return nil, fmt.Errorf("object %s does not exist", objectName)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeObjStore) Remove(_ context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.objects, objectName)

	return nil
}

func (f *fakeObjStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.objects)
}

// fakePublisher records published messages.
type fakePublisher struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakePublisher) Publish(_ context.Context, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, message)

	return nil
}

// fakeResizer swaps bimg out of unit tests.
type fakeResizer struct {
	fn func(original []byte, size int) ([]byte, error)
}

func (f *fakeResizer) Thumbnail(original []byte, size int) ([]byte, error) {
	if f.fn != nil {
		return f.fn(original, size)
	}

	return fmt.Appendf(nil, "thumb-%d-of-%d-bytes", size, len(original)), nil
}
