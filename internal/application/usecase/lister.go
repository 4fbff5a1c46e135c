package usecase

import (
	"context"

	"photovault/internal/domain/entity"
	"photovault/internal/domain/repository/database"
	"photovault/pkg/logger"
)

// Lister answers read-only reconciliation queries for the owning aggregate.
type Lister struct {
	photoLister database.PhotoLister
	retriever   database.PhotoRetriever
}

func NewLister(photoLister database.PhotoLister, retriever database.PhotoRetriever) *Lister {
	return &Lister{
		photoLister: photoLister,
		retriever:   retriever,
	}
}

func (l *Lister) FindPhotoIDsForVisit(ctx context.Context, visitID string) ([]string, error) {
	photos, err := l.photoLister.GetByVisit(ctx, visitID)
	if err != nil {
		logger.Error("visit photo lookup failed", "visit", visitID, "err", err)

		return nil, &entity.StorageError{Op: "list visit photos", ID: visitID, Err: err}
	}

	ids := make([]string, 0, len(photos))
	for i := range photos {
		ids = append(ids, photos[i].ID)
	}

	return ids, nil
}

func (l *Lister) ExistsOne(ctx context.Context, photoID string) (bool, error) {
	existing, err := l.ExistsMany(ctx, []string{photoID})
	if err != nil {
		return false, err
	}

	_, ok := existing[photoID]

	return ok, nil
}

// ExistsMany filters malformed ids up front and answers the rest with a
// single bulk query, never one round trip per id.
func (l *Lister) ExistsMany(ctx context.Context, photoIDs []string) (map[string]struct{}, error) {
	candidates := make([]string, 0, len(photoIDs))
	seen := make(map[string]struct{}, len(photoIDs))
	for _, id := range photoIDs {
		if !wellFormedID(id) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		candidates = append(candidates, id)
	}

	existing := make(map[string]struct{}, len(candidates))
	if len(candidates) == 0 {
		return existing, nil
	}

	ids, err := l.retriever.ExistingIDs(ctx, candidates)
	if err != nil {
		logger.Error("bulk existence query failed", "count", len(candidates), "err", err)

		return nil, &entity.StorageError{Op: "exists", ID: "", Err: err}
	}

	for _, id := range ids {
		existing[id] = struct{}{}
	}

	return existing, nil
}
