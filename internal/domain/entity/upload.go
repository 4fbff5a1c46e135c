package entity

import "io"

// FileUpload is one incoming file before validation.
type FileUpload struct {
	Body        io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// Download is a stored blob opened for reading. The caller owns Body and
// must close it.
type Download struct {
	Body        io.ReadCloser
	ContentType string
	Filename    string
	Size        int64
}
