package usecase

import "github.com/google/uuid"

// wellFormedID reports whether id looks like a store-assigned photo id
// (canonical UUID string). Anything else is treated as "does not exist"
// rather than an error.
func wellFormedID(id string) bool {
	if len(id) != 36 {
		return false
	}

	_, err := uuid.Parse(id)

	return err == nil
}
