package handler

import (
	"context"

	"photovault/internal/domain/entity"
)

type stubUploader struct {
	saveOne  func(ctx context.Context, upload *entity.FileUpload, placeID, visitID string) (string, error)
	saveMany func(ctx context.Context, uploads []*entity.FileUpload, placeID, visitID string) ([]string, error)
}

func (s *stubUploader) SaveOne(ctx context.Context, upload *entity.FileUpload,
	placeID, visitID string,
) (string, error) {
	return s.saveOne(ctx, upload, placeID, visitID)
}

func (s *stubUploader) SaveMany(ctx context.Context, uploads []*entity.FileUpload,
	placeID, visitID string,
) ([]string, error) {
	return s.saveMany(ctx, uploads, placeID, visitID)
}

type stubGetter struct {
	getOne func(ctx context.Context, photoID string) (*entity.Download, error)
}

func (s *stubGetter) GetOne(ctx context.Context, photoID string) (*entity.Download, error) {
	return s.getOne(ctx, photoID)
}

type stubThumbnailer struct {
	getThumbnail func(ctx context.Context, photoID string, size int) (*entity.Download, error)
}

func (s *stubThumbnailer) GetThumbnail(ctx context.Context, photoID string, size int) (*entity.Download, error) {
	return s.getThumbnail(ctx, photoID, size)
}

type stubDeleter struct {
	deleteOne         func(ctx context.Context, photoID string) error
	deleteAllForVisit func(ctx context.Context, visitID string) error
}

func (s *stubDeleter) DeleteOne(ctx context.Context, photoID string) error {
	return s.deleteOne(ctx, photoID)
}

func (s *stubDeleter) DeleteAllForVisit(ctx context.Context, visitID string) error {
	return s.deleteAllForVisit(ctx, visitID)
}

type stubLister struct {
	findPhotoIDs func(ctx context.Context, visitID string) ([]string, error)
	existsMany   func(ctx context.Context, photoIDs []string) (map[string]struct{}, error)
}

func (s *stubLister) FindPhotoIDsForVisit(ctx context.Context, visitID string) ([]string, error) {
	return s.findPhotoIDs(ctx, visitID)
}

func (s *stubLister) ExistsOne(ctx context.Context, photoID string) (bool, error) {
	existing, err := s.existsMany(ctx, []string{photoID})
	if err != nil {
		return false, err
	}
	_, ok := existing[photoID]

	return ok, nil
}

func (s *stubLister) ExistsMany(ctx context.Context, photoIDs []string) (map[string]struct{}, error) {
	return s.existsMany(ctx, photoIDs)
}
