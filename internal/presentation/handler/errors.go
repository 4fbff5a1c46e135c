package handler

import (
	"errors"
	"net/http"

	"photovault/internal/domain/entity"
)

// statusFromError maps the error taxonomy onto HTTP status codes.
func statusFromError(err error) int {
	var validation *entity.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}

	var notFound *entity.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var batch *entity.BatchUploadError
	if errors.As(err, &batch) {
		if errors.As(batch.First, &validation) {
			return http.StatusBadRequest
		}

		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
