package dataset

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// ImageReadError reports an image whose dimensions could not be read.
type ImageReadError struct {
	Path string
	Err  error
}

func (e *ImageReadError) Error() string {
	return fmt.Sprintf("reading image %s: %v", e.Path, e.Err)
}

func (e *ImageReadError) Unwrap() error {
	return e.Err
}

// ImageSize returns the pixel width and height of an image.
// Only the header is decoded.
func ImageSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, &ImageReadError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, &ImageReadError{Path: path, Err: err}
	}

	return cfg.Width, cfg.Height, nil
}
