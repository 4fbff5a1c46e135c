package imaging

import (
	"fmt"

	"github.com/h2non/bimg"
)

// Resizer produces bounding-box thumbnails re-encoded as JPEG at a fixed
// quality.
type Resizer struct {
	quality int
}

func NewResizer(quality int) *Resizer {
	return &Resizer{quality: quality}
}

// Thumbnail resizes the image to fit a size x size bounding box, keeping
// aspect ratio, and re-encodes it as JPEG.
func (r *Resizer) Thumbnail(original []byte, size int) ([]byte, error) {
	options := bimg.Options{
		Width:   size,
		Height:  size,
		Quality: r.quality,
		Type:    bimg.JPEG,
	}

	resized, err := bimg.NewImage(original).Process(options)
	if err != nil {
		return nil, fmt.Errorf("resize to %dpx failed: %w", size, err)
	}

	return resized, nil
}
