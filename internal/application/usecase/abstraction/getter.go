package abstraction

import (
	"context"

	"photovault/internal/domain/entity"
)

type Getter interface {
	GetOne(ctx context.Context, photoID string) (*entity.Download, error)
}
