package abstraction

import "context"

type Lister interface {
	FindPhotoIDsForVisit(ctx context.Context, visitID string) ([]string, error)
	ExistsOne(ctx context.Context, photoID string) (bool, error)
	// ExistsMany answers in one store round trip. Malformed ids are filtered
	// out before the query and never appear in the result.
	ExistsMany(ctx context.Context, photoIDs []string) (map[string]struct{}, error)
}
