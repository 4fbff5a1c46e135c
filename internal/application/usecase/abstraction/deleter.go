package abstraction

import "context"

type Deleter interface {
	// DeleteOne removes a photo and every thumbnail derived from it.
	// Deleting an id that does not exist is not an error.
	DeleteOne(ctx context.Context, photoID string) error
	// DeleteAllForVisit cascades over every photo stored under the visit.
	DeleteAllForVisit(ctx context.Context, visitID string) error
}
