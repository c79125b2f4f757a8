package assemble

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"coco-prep/internal/coco"
	"coco-prep/internal/common"
	"coco-prep/internal/dataset"
	"coco-prep/internal/diagnostic"
	"coco-prep/internal/yolo"
)

// TimeLayout formats date_created and date_captured.
const TimeLayout = "2006-01-02 15:04:05"

// OutputName is the file written under <root>/annotations.
const OutputName = "test.json"

// Diagnostic codes collected in Report.Diagnostics.
const (
	CodeImageReadError     = "image_read_error"
	CodeMalformedLabelLine = "malformed_label_line"
	CodeLabelReadError     = "label_read_error"
	CodeMissingLabelFile   = "missing_label_file"
	CodeMissingLabelFolder = "missing_label_folder"
)

// Reporter receives the operator-facing progress of a run.
type Reporter interface {
	Info(format string, v ...any)
	Warning(format string, v ...any)
	Error(format string, v ...any)
}

// Options configures an Assembler.
type Options struct {
	// FolderCount is how many trailing folders are processed.
	FolderCount int
	// Info is the document header. An empty DateCreated is set to the run time.
	Info    coco.Info
	License coco.License
	Now     func() time.Time
}

// DefaultOptions returns the TiaoZhanCup test-set settings.
func DefaultOptions() Options {
	return Options{
		FolderCount: 6,
		Info: coco.Info{
			Description: "TiaoZhanCup Test Dataset",
			Version:     "1.0",
			Year:        2024,
			Contributor: "TiaoZhanCup",
		},
		License: coco.License{ID: 1, Name: "Unknown"},
		Now:     time.Now,
	}
}

// Report summarizes a run.
type Report struct {
	Folders     []string
	Images      int
	Annotations int
	Categories  int
	// Unlabeled counts images kept without a label file.
	Unlabeled   int
	Diagnostics diagnostic.Diagnostics
}

// idSequence hands out ids 1, 2, 3, ...
type idSequence struct {
	last int
}

func (s *idSequence) next() int {
	s.last++
	return s.last
}

// Assembler builds one COCO document from a dataset layout.
type Assembler struct {
	layout  dataset.Layout
	classes dataset.ClassTable
	opts    Options
	report  Reporter
}

// New returns an Assembler. A nil opts.Now falls back to time.Now.
func New(layout dataset.Layout, classes dataset.ClassTable, opts Options, report Reporter) *Assembler {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Assembler{
		layout:  layout,
		classes: classes,
		opts:    opts,
		report:  report,
	}
}

// state is threaded through one Assemble call.
type state struct {
	doc         *coco.Document
	rep         *Report
	now         string
	images      idSequence
	annotations idSequence
}

// Assemble walks the selected folders and returns the document with its run
// report. Only a missing or unlistable image tree is an error.
func (a *Assembler) Assemble() (*coco.Document, *Report, error) {
	all, err := a.layout.Folders()
	if err != nil {
		return nil, nil, err
	}

	folders := dataset.SelectLast(all, a.opts.FolderCount)
	if common.IsEmpty(folders) {
		a.report.Warning("no image folders under %s", a.layout.ImagesDir())
	} else {
		a.report.Info("processing %d folders: %v", len(folders), folders)
	}

	st := &state{
		doc: coco.NewDocument(),
		rep: &Report{Folders: folders},
		now: a.opts.Now().Format(TimeLayout),
	}

	info := a.opts.Info
	if info.DateCreated == "" {
		info.DateCreated = st.now
	}

	if err := st.doc.SetInfo(info); err != nil {
		return nil, nil, err
	}

	if err := st.doc.SetLicenses([]coco.License{a.opts.License}); err != nil {
		return nil, nil, err
	}

	st.doc.Categories = a.classes.Categories()

	for _, folder := range folders {
		if err := a.assembleFolder(st, folder); err != nil {
			return nil, nil, err
		}
	}

	checks := coco.Check(st.doc)
	for _, w := range checks.Warnings {
		a.report.Warning("%s", w)
	}

	if err := checks.Error(); err != nil {
		return nil, nil, fmt.Errorf("assembled document is inconsistent: %w", err)
	}

	st.rep.Diagnostics.Merge(*checks)

	st.rep.Images = len(st.doc.Images)
	st.rep.Annotations = len(st.doc.Annotations)
	st.rep.Categories = len(st.doc.Categories)

	return st.doc, st.rep, nil
}

func (a *Assembler) assembleFolder(st *state, folder string) error {
	a.report.Info("processing folder: %s", folder)

	if !a.layout.HasLabelFolder(folder) {
		dir := filepath.Join(a.layout.LabelsDir(), folder)
		st.rep.Diagnostics.AddWarning(CodeMissingLabelFolder, "label folder does not exist", folder, dir)
		a.report.Warning("label folder %s does not exist; its images get no annotations", dir)
	}

	files, err := a.layout.ImageFiles(folder)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := a.assembleImage(st, folder, file); err != nil {
			return err
		}
	}

	return nil
}

func (a *Assembler) assembleImage(st *state, folder, file string) error {
	imgPath := a.layout.ImagePath(folder, file)

	width, height, err := dataset.ImageSize(imgPath)
	if err != nil {
		st.rep.Diagnostics.AddWarning(CodeImageReadError, err.Error(), folder, file)
		a.report.Warning("skipping %s: %v", imgPath, err)

		return nil
	}

	img := coco.Image{
		ID:       st.images.next(),
		FileName: path.Join(folder, file),
		Width:    width,
		Height:   height,
	}

	if err := a.setImageExtras(&img, st.now); err != nil {
		return err
	}

	st.doc.Images = append(st.doc.Images, img)

	labelPath := a.layout.LabelPath(folder, file)

	labels, skipped, err := yolo.ParseFile(labelPath)
	if err != nil {
		var missing *coco.MissingFileError
		if errors.As(err, &missing) {
			st.rep.Unlabeled++
			st.rep.Diagnostics.AddInfo(CodeMissingLabelFile, "no label file", folder, file)

			return nil
		}

		// Lines read before the failure are kept.
		st.rep.Diagnostics.AddWarning(CodeLabelReadError, err.Error(), folder, file)
		a.report.Warning("reading label file %s: %v", labelPath, err)
	}

	for _, s := range skipped {
		st.rep.Diagnostics.AddWarning(CodeMalformedLabelLine, s.Error(), folder, file)
		a.report.Warning("skipping %v", s)
	}

	for _, label := range labels {
		ann := coco.Annotation{
			ID:         st.annotations.next(),
			ImageID:    img.ID,
			CategoryID: label.ClassID,
		}

		if err := a.setAnnotationFields(&ann, label.Box(width, height)); err != nil {
			return err
		}

		st.doc.Annotations = append(st.doc.Annotations, ann)
	}

	return nil
}

func (a *Assembler) setAnnotationFields(ann *coco.Annotation, box coco.BBox) error {
	if err := ann.SetBox(box); err != nil {
		return fmt.Errorf("annotation %d: %w", ann.ID, err)
	}

	fields := []struct {
		key   string
		value any
	}{
		{"segmentation", coco.EmptySegmentation},
		{"iscrowd", 0},
		{"ignore", 0},
	}

	for _, f := range fields {
		if err := ann.Set(f.key, f.value); err != nil {
			return fmt.Errorf("annotation %d: %w", ann.ID, err)
		}
	}

	return nil
}

func (a *Assembler) setImageExtras(img *coco.Image, now string) error {
	extras := []struct {
		key   string
		value any
	}{
		{"license", a.opts.License.ID},
		{"flickr_url", ""},
		{"coco_url", ""},
		{"date_captured", now},
	}

	for _, e := range extras {
		if err := img.Set(e.key, e.value); err != nil {
			return fmt.Errorf("image %s: %w", img.FileName, err)
		}
	}

	return nil
}
