package remap

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"coco-prep/internal/coco"
	"coco-prep/internal/common"
	"coco-prep/internal/diagnostic"
	"coco-prep/internal/mapping"
	"coco-prep/internal/match"
)

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome -output=outcome_string.go

// Outcome is what happened to one source annotation.
type Outcome int

const (
	_ Outcome = iota

	OutcomeMapped
	OutcomeDropped
)

// OutputPrefix is prepended to the base name of converted files.
const OutputPrefix = "converted_"

// Reporter receives the operator-facing progress of a conversion.
type Reporter interface {
	Info(format string, v ...any)
	Warning(format string, v ...any)
	Error(format string, v ...any)
}

// UnmappedCategoryError reports an annotation whose category has no entry
// in the mapping table. The annotation is dropped.
type UnmappedCategoryError struct {
	AnnotationID int
	CategoryID   int
}

func (e *UnmappedCategoryError) Error() string {
	return fmt.Sprintf("no category mapping for id %d (annotation %d)", e.CategoryID, e.AnnotationID)
}

// Result is the outcome of remapping one document.
type Result struct {
	Document *coco.Document
	// Outcomes is aligned with the annotations of the source document.
	Outcomes []Outcome
	Mapped   int
	Dropped  []*UnmappedCategoryError
	// Suggestions holds, per dropped source category id, the closest
	// taxonomy classes by name. Categories without a close match are absent.
	Suggestions map[int]match.CandidateList
}

// Remapper applies a validated mapping table.
type Remapper struct {
	table  *mapping.Table
	report Reporter
}

// New validates the table and returns a Remapper for it. Validation
// warnings are reported; validation errors are returned.
func New(table *mapping.Table, report Reporter) (*Remapper, error) {
	diags := mapping.Validate(table)

	for _, w := range diags.Warnings {
		report.Warning("mapping table: %s", w)
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid mapping table: %w", err)
	}

	return &Remapper{table: table, report: report}, nil
}

// Remap returns a remapped copy of doc. doc itself is not modified.
func (r *Remapper) Remap(doc *coco.Document) (*Result, error) {
	if doc == nil {
		return nil, errors.New("document is nil")
	}

	names := doc.CategoryNames()
	r.report.Info("source categories: %v", names)

	out := doc.Clone()
	source := out.Annotations
	out.Categories = r.table.Categories()
	out.Annotations = make([]coco.Annotation, 0, len(doc.Annotations))

	res := &Result{
		Document: out,
		Outcomes: make([]Outcome, len(doc.Annotations)),
	}

	for i, ann := range source {
		from := ann.CategoryID

		target, ok := r.table.Lookup(from)
		if !ok {
			err := &UnmappedCategoryError{AnnotationID: ann.ID, CategoryID: from}
			res.Dropped = append(res.Dropped, err)
			res.Outcomes[i] = OutcomeDropped
			r.report.Warning("%v", err)

			continue
		}

		targetName, _ := r.table.TargetName(target)
		r.report.Info("  mapped: %s (ID: %d) -> %s (ID: %d)", categoryName(names, from), from, targetName, target)

		ann.CategoryID = target
		out.Annotations = append(out.Annotations, ann)
		res.Outcomes[i] = OutcomeMapped
		res.Mapped++
	}

	r.suggest(res, names)

	return res, nil
}

// suggest reports the closest taxonomy classes for each dropped category.
func (r *Remapper) suggest(res *Result, names map[int]string) {
	var ids []int

	for _, d := range res.Dropped {
		if !slices.Contains(ids, d.CategoryID) {
			ids = append(ids, d.CategoryID)
		}
	}

	slices.Sort(ids)

	res.Suggestions = map[int]match.CandidateList{}

	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			continue
		}

		closest := mapping.Suggest(r.table, name)
		if len(closest) == 0 {
			continue
		}

		res.Suggestions[id] = closest
		r.report.Info("  unmapped: %s (ID: %d), closest targets: %v", name, id, closest)
	}
}

// ConvertFile remaps the COCO file in and writes the result to out.
func (r *Remapper) ConvertFile(in, out string) (*Result, error) {
	doc, err := coco.LoadFile(in)
	if err != nil {
		return nil, err
	}

	res, err := r.Remap(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}

	// Findings in the source data are carried over as they are.
	checks := coco.Check(res.Document)
	for _, list := range [][]diagnostic.Diagnostic{checks.Errors, checks.Warnings} {
		for _, d := range list {
			r.report.Warning("%s: %s", in, d)
		}
	}

	if err := coco.WriteFile(res.Document, out); err != nil {
		return nil, err
	}

	return res, nil
}

// OutputPath returns <dir>/converted_<base> for an input path.
func OutputPath(in string) string {
	return filepath.Join(filepath.Dir(in), OutputPrefix+filepath.Base(in))
}

// Run converts each split file of dir next to its source. A missing or
// failing split is reported and skipped; the returned error lists them.
func Run(dir string, splits []string, r *Remapper, report Reporter) error {
	var failed []string

	for _, split := range splits {
		in := filepath.Join(dir, split)
		out := OutputPath(in)

		report.Info("processing: %s", in)

		res, err := r.ConvertFile(in, out)
		if err != nil {
			var missing *coco.MissingFileError
			if errors.As(err, &missing) {
				report.Error("file does not exist: %s", missing.Path)
			} else {
				report.Error("converting %s: %v", in, err)
			}

			failed = append(failed, split)

			continue
		}

		report.Info("saved to: %s", out)
		report.Info("%v: %d, %v: %d", OutcomeMapped, res.Mapped, OutcomeDropped, len(res.Dropped))
	}

	report.Info("conversion finished; check the converted files before replacing the originals")

	if !common.IsEmpty(failed) {
		return fmt.Errorf("%d of %d split files failed: %v", len(failed), len(splits), failed)
	}

	return nil
}

func categoryName(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}

	return "<unknown>"
}
