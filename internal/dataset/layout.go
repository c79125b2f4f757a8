package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"coco-prep/internal/coco"
	"coco-prep/internal/common"
)

// ImageExtensions lists the file extensions treated as images (lower case).
var ImageExtensions = []string{".bmp", ".jpg", ".jpeg", ".png"}

// Layout locates the parts of a dataset below Root.
type Layout struct {
	Root string
}

// ImagesDir returns <root>/images.
func (l Layout) ImagesDir() string {
	return filepath.Join(l.Root, "images")
}

// LabelsDir returns <root>/labels.
func (l Layout) LabelsDir() string {
	return filepath.Join(l.Root, "labels")
}

// AnnotationsDir returns <root>/annotations.
func (l Layout) AnnotationsDir() string {
	return filepath.Join(l.Root, "annotations")
}

// ClassFile returns <root>/annotations/class.json.
func (l Layout) ClassFile() string {
	return filepath.Join(l.AnnotationsDir(), "class.json")
}

// ImagePath returns <root>/images/<folder>/<file>.
func (l Layout) ImagePath(folder, file string) string {
	return filepath.Join(l.ImagesDir(), folder, file)
}

// LabelPath returns the label file mirroring an image:
// <root>/labels/<folder>/<file without extension>.txt.
func (l Layout) LabelPath(folder, file string) string {
	base := strings.TrimSuffix(file, filepath.Ext(file))
	return filepath.Join(l.LabelsDir(), folder, base+".txt")
}

// HasLabelFolder reports whether <root>/labels/<folder> is a directory.
func (l Layout) HasLabelFolder(folder string) bool {
	info, err := os.Stat(filepath.Join(l.LabelsDir(), folder))
	return err == nil && info.IsDir()
}

// Folders lists the sub-directories of <root>/images in lexicographic order.
func (l Layout) Folders() ([]string, error) {
	dir := l.ImagesDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &coco.MissingFileError{Path: dir, Err: err}
		}

		return nil, fmt.Errorf("listing image folders: %w", err)
	}

	var folders []string

	for _, e := range entries {
		if isDir(dir, e) {
			folders = append(folders, e.Name())
		}
	}

	slices.Sort(folders)

	return folders, nil
}

// ImageFiles lists the image files of a folder in lexicographic order.
func (l Layout) ImageFiles(folder string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.ImagesDir(), folder))
	if err != nil {
		return nil, fmt.Errorf("listing images of %s: %w", folder, err)
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}

		files = append(files, e.Name())
	}

	slices.Sort(files)

	return files, nil
}

// SelectLast returns the last n folders of a sorted folder list.
func SelectLast(folders []string, n int) []string {
	return common.LastN(folders, n)
}

// IsImageFile reports whether name has one of ImageExtensions, ignoring case.
func IsImageFile(name string) bool {
	return slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(name)))
}

// isDir follows symbolic links, so linked folders count as folders.
func isDir(parent string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}

	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(filepath.Join(parent, e.Name()))

	return err == nil && info.IsDir()
}
