package utils

import "strings"

// mimeTypeToExtension maps the image MIME types this service stores to their
// typical file extensions.
var mimeTypeToExtension = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "image/jpeg; charset=utf-8")
	cleanedMimeType := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[strings.ToLower(cleanedMimeType)]; ok {
		return ext
	}

	return ".bin"
}

// FileExtension returns the last dot-suffix of a filename, lower-cased and
// without the dot. Filenames with no dot yield an empty string.
func FileExtension(filename string) string {
	dotIndex := strings.LastIndex(filename, ".")
	if dotIndex == -1 || dotIndex == len(filename)-1 {
		return ""
	}

	return strings.ToLower(filename[dotIndex+1:])
}
