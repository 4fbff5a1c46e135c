package validator

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"photovault/internal/domain/entity"
	"photovault/pkg/utils"
)

// sniffLen is how many leading bytes are buffered for content detection.
const sniffLen = 3072

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// Validator runs every upload check before any byte reaches the blob store.
type Validator struct {
	maxBytes int64
}

// New builds a Validator. The ceiling is configured in megabytes and
// converted to bytes once here.
func New(maxSizeMB int64) *Validator {
	return &Validator{
		maxBytes: maxSizeMB * 1024 * 1024,
	}
}

func (v *Validator) MaxBytes() int64 {
	return v.maxBytes
}

// Validate checks size, declared content type, filename extension, and the
// magic bytes of the stream. On success upload.Body is replaced with a
// reader that replays the sniffed prefix, so no bytes are lost.
func (v *Validator) Validate(upload *entity.FileUpload) error {
	if upload.Size == 0 {
		return entity.NewValidationError("empty file")
	}

	if upload.Size > v.maxBytes {
		return entity.NewValidationError("file exceeds maximum size of %d MB", v.maxBytes/(1024*1024))
	}

	declared := strings.ToLower(strings.TrimSpace(strings.Split(upload.ContentType, ";")[0]))
	if _, ok := allowedContentTypes[declared]; !ok {
		return entity.NewValidationError("unsupported content type %q", upload.ContentType)
	}

	ext := utils.FileExtension(upload.Filename)
	if _, ok := allowedExtensions[ext]; !ok {
		return entity.NewValidationError("unsupported file extension %q", ext)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return entity.NewValidationError("unreadable upload: %v", err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if _, ok := allowedContentTypes[detected.String()]; !ok {
		return entity.NewValidationError("file content is %s, not an allowed image type", detected.String())
	}

	upload.Body = io.MultiReader(bytes.NewReader(head), upload.Body)
	upload.ContentType = declared

	return nil
}
