package database

import (
	"context"

	"photovault/internal/domain/model"
)

type PhotoLister interface {
	GetByVisit(ctx context.Context, visitID string) ([]model.Photo, error)
}
