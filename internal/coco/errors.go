package coco

import "fmt"

// MissingFileError reports an expected input path that does not exist.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}

func (e *MissingFileError) Unwrap() error {
	return e.Err
}
