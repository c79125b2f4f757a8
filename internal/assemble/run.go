package assemble

import (
	"path/filepath"

	"coco-prep/internal/coco"
	"coco-prep/internal/dataset"
)

// OutputPath returns <root>/annotations/test.json.
func OutputPath(layout dataset.Layout) string {
	return filepath.Join(layout.AnnotationsDir(), OutputName)
}

// Run loads the class table, assembles the test set and writes it to
// OutputPath. A missing class file or image tree aborts the run.
func Run(layout dataset.Layout, opts Options, report Reporter) (*Report, error) {
	classes, err := dataset.LoadClassTable(layout.ClassFile())
	if err != nil {
		return nil, err
	}

	doc, rep, err := New(layout, classes, opts, report).Assemble()
	if err != nil {
		return nil, err
	}

	out := OutputPath(layout)
	if err := coco.WriteFile(doc, out); err != nil {
		return nil, err
	}

	report.Info("generated %s with:", OutputName)
	report.Info("  - %d images", rep.Images)
	report.Info("  - %d annotations", rep.Annotations)
	report.Info("  - %d categories", rep.Categories)
	report.Info("  - %d skipped images, %d skipped label lines, %d unlabeled images",
		rep.Diagnostics.Count(CodeImageReadError),
		rep.Diagnostics.Count(CodeMalformedLabelLine),
		rep.Unlabeled)
	report.Info("  - saved to: %s", out)

	return rep, nil
}
