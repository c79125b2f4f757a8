package remap

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coco-prep/internal/coco"
	"coco-prep/internal/mapping"
)

func TestNew_RejectsInvalidTable(t *testing.T) {
	tbl := toyTable()
	tbl.Mapping[3] = 3

	_, err := New(tbl, &recorder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target_out_of_range")
}

func TestNew_ReportsWarnings(t *testing.T) {
	tbl := toyTable()
	tbl.Mapping[5] = 0

	rec := &recorder{}
	_, err := New(tbl, rec)
	require.NoError(t, err)

	require.Len(t, rec.warnings, 1)
	assert.Contains(t, rec.warnings[0], "non_injective")
}

func TestRemap(t *testing.T) {
	rec := &recorder{}
	r, err := New(toyTable(), rec)
	require.NoError(t, err)

	src := sourceDocument(t)
	res, err := r.Remap(src)
	require.NoError(t, err)

	out := res.Document

	assert.Equal(t, []coco.Category{
		{ID: 0, Name: "person", Supercategory: "none"},
		{ID: 1, Name: "car", Supercategory: "none"},
		{ID: 2, Name: "airplane", Supercategory: "none"},
	}, out.Categories)

	var ids, categories []int
	for _, ann := range out.Annotations {
		ids = append(ids, ann.ID)
		categories = append(categories, ann.CategoryID)
	}

	assert.Equal(t, []int{1, 3, 5}, ids)
	assert.Equal(t, []int{2, 0, 1}, categories)
	assert.Equal(t, 3, res.Mapped)
	assert.Equal(t, []Outcome{OutcomeMapped, OutcomeDropped, OutcomeMapped, OutcomeDropped, OutcomeMapped}, res.Outcomes)

	require.Len(t, res.Dropped, 2)
	assert.Equal(t, &UnmappedCategoryError{AnnotationID: 2, CategoryID: 2}, res.Dropped[0])
	assert.Equal(t, &UnmappedCategoryError{AnnotationID: 4, CategoryID: 5}, res.Dropped[1])

	// Untouched fields survive.
	assert.Equal(t, src.Images, out.Images)
	assert.Equal(t, src.Info, out.Info)
	assert.JSONEq(t, `0`, string(out.Annotations[0].Extra["ignore"]))
	assert.JSONEq(t, `1`, string(out.Annotations[2].Extra["iscrowd"]))
	assert.JSONEq(t, `[5, 6, 7, 8]`, string(out.Annotations[1].Extra["bbox"]))

	// Every decision is reported.
	assert.Contains(t, rec.infos, "  mapped: drone (ID: 0) -> airplane (ID: 2)")
	assert.Contains(t, rec.infos, "  mapped: pedestrian (ID: 4) -> person (ID: 0)")
	assert.Equal(t, []string{
		"no category mapping for id 2 (annotation 2)",
		"no category mapping for id 5 (annotation 4)",
	}, rec.warnings)
}

func TestRemap_SourceUnchanged(t *testing.T) {
	r, err := New(toyTable(), &recorder{})
	require.NoError(t, err)

	src := sourceDocument(t)
	before, err := coco.Marshal(src)
	require.NoError(t, err)

	_, err = r.Remap(src)
	require.NoError(t, err)

	after, err := coco.Marshal(src)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestRemap_CategoryIDsInTaxonomy(t *testing.T) {
	tbl, err := mapping.Default()
	require.NoError(t, err)

	r, err := New(tbl, &recorder{})
	require.NoError(t, err)

	src := sourceDocument(t)
	res, err := r.Remap(src)
	require.NoError(t, err)

	expected := 0
	for _, ann := range src.Annotations {
		if _, ok := tbl.Lookup(ann.CategoryID); ok {
			expected++
		}
	}

	assert.Len(t, res.Document.Annotations, expected)
	assert.Len(t, res.Document.Categories, len(tbl.Taxonomy))

	for _, ann := range res.Document.Annotations {
		assert.GreaterOrEqual(t, ann.CategoryID, 0)
		assert.Less(t, ann.CategoryID, len(tbl.Taxonomy))
	}
}

func TestRemap_InverseRecoversMappedSubset(t *testing.T) {
	tbl := toyTable()

	r, err := New(tbl, &recorder{})
	require.NoError(t, err)

	src := sourceDocument(t)
	res, err := r.Remap(src)
	require.NoError(t, err)

	inv, err := tbl.Inverse()
	require.NoError(t, err)

	recovered := map[int]int{}
	for _, ann := range res.Document.Annotations {
		original, ok := inv[ann.CategoryID]
		require.True(t, ok)

		recovered[ann.ID] = original
	}

	mappable := map[int]int{}
	for _, ann := range src.Annotations {
		if _, ok := tbl.Lookup(ann.CategoryID); ok {
			mappable[ann.ID] = ann.CategoryID
		}
	}

	assert.Equal(t, mappable, recovered)
	assert.NotContains(t, recovered, 2, "unmapped annotations are lost")
	assert.NotContains(t, recovered, 4, "unmapped annotations are lost")
}

func TestRemap_NoAnnotations(t *testing.T) {
	r, err := New(toyTable(), &recorder{})
	require.NoError(t, err)

	res, err := r.Remap(coco.NewDocument())
	require.NoError(t, err)

	assert.Empty(t, res.Document.Annotations)
	assert.NotNil(t, res.Document.Annotations)
	assert.Len(t, res.Document.Categories, 3)
	assert.Zero(t, res.Mapped)
	assert.Empty(t, res.Dropped)

	_, err = r.Remap(nil)
	require.Error(t, err)
}

func TestRemap_UnknownSourceCategoryName(t *testing.T) {
	rec := &recorder{}
	r, err := New(toyTable(), rec)
	require.NoError(t, err)

	doc := coco.NewDocument()
	doc.Annotations = append(doc.Annotations, coco.Annotation{ID: 1, ImageID: 1, CategoryID: 4})

	_, err = r.Remap(doc)
	require.NoError(t, err)
	assert.Contains(t, rec.infos, "  mapped: <unknown> (ID: 4) -> person (ID: 0)")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("data", "annotations", "converted_train.json"),
		OutputPath(filepath.Join("data", "annotations", "train.json")))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "Mapped", OutcomeMapped.String())
	assert.Equal(t, "Dropped", OutcomeDropped.String())
	assert.Equal(t, "Outcome(0)", Outcome(0).String())
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "val.json")

	data, err := coco.Marshal(sourceDocument(t))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(in, data, 0o644))

	r, err := New(toyTable(), &recorder{})
	require.NoError(t, err)

	res, err := r.ConvertFile(in, OutputPath(in))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Mapped)

	written, err := coco.LoadFile(filepath.Join(dir, "converted_val.json"))
	require.NoError(t, err)
	assert.Len(t, written.Annotations, 3)
	assert.Len(t, written.Categories, 3)

	// The source file is left as it was.
	original, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, data, original)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	data, err := coco.Marshal(sourceDocument(t))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "train.json"), data, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "val.json"), []byte("{broken"), 0o644))

	rec := &recorder{}
	r, err := New(toyTable(), rec)
	require.NoError(t, err)

	err = Run(dir, []string{"train.json", "val.json", "test.json"}, r, rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 split files failed")

	_, statErr := os.Stat(filepath.Join(dir, "converted_train.json"))
	require.NoError(t, statErr)

	_, statErr = os.Stat(filepath.Join(dir, "converted_val.json"))
	assert.True(t, os.IsNotExist(statErr))

	require.Len(t, rec.errors, 2)
	assert.Contains(t, rec.errors[0], "val.json")
	assert.Equal(t, "file does not exist: "+filepath.Join(dir, "test.json"), rec.errors[1])
	assert.Contains(t, rec.infos, "Mapped: 3, Dropped: 2")
}

func TestRun_AllPresent(t *testing.T) {
	dir := t.TempDir()

	data, err := coco.Marshal(sourceDocument(t))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "train.json"), data, 0o644))

	rec := &recorder{}
	r, err := New(toyTable(), rec)
	require.NoError(t, err)

	require.NoError(t, Run(dir, []string{"train.json"}, r, rec))
	assert.Empty(t, rec.errors)
}

func TestRemap_Suggestions(t *testing.T) {
	tbl := toyTable()
	tbl.Taxonomy = append(tbl.Taxonomy, "ships")

	rec := &recorder{}
	r, err := New(tbl, rec)
	require.NoError(t, err)

	res, err := r.Remap(sourceDocument(t))
	require.NoError(t, err)

	require.Contains(t, res.Suggestions, 2)
	assert.Equal(t, "ships", res.Suggestions[2].Best().Name)
	assert.NotContains(t, res.Suggestions, 5, "cyclist has no close taxonomy name")
	assert.Contains(t, rec.infos, "  unmapped: ship (ID: 2), closest targets: ships (ID: 3)")
}

func TestRemap_CopiesAnnotationVerbatim(t *testing.T) {
	const in = `{"id":1,"image_id":1,"category_id":1,"bbox":[1,2,3,4,5],"attributes":{"occluded":true}}`

	doc, err := coco.Parse([]byte(`{"images": [{"id": 1, "file_name": "a.jpg", "width": 8, "height": 8}],
		"annotations": [` + in + `]}`))
	require.NoError(t, err)

	r, err := New(toyTable(), &recorder{})
	require.NoError(t, err)

	res, err := r.Remap(doc)
	require.NoError(t, err)
	require.Len(t, res.Document.Annotations, 1)

	got, err := json.Marshal(res.Document.Annotations[0])
	require.NoError(t, err)

	// Only category_id changes: car (1) stays 1 in the toy taxonomy, so the
	// rest must match byte for byte as JSON.
	assert.JSONEq(t, in, string(got))

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(got, &fields))
	assert.NotContains(t, fields, "area")
	assert.NotContains(t, fields, "iscrowd")
	assert.NotContains(t, fields, "segmentation")
}

func TestRemap_RewritesOnlyCategoryID(t *testing.T) {
	r, err := New(toyTable(), &recorder{})
	require.NoError(t, err)

	src := sourceDocument(t)
	res, err := r.Remap(src)
	require.NoError(t, err)

	for _, ann := range res.Document.Annotations {
		i := slices.IndexFunc(src.Annotations, func(a coco.Annotation) bool { return a.ID == ann.ID })
		require.GreaterOrEqual(t, i, 0)

		before := src.Annotations[i]
		assert.Equal(t, before.ImageID, ann.ImageID)
		assert.Equal(t, before.Extra, ann.Extra)
	}
}

func TestConvertFile_ReportsSourceFindings(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "train.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"images": [],
		"annotations": [{"id": 1, "image_id": 9, "category_id": 0}]}`), 0o644))

	rec := &recorder{}
	r, err := New(toyTable(), rec)
	require.NoError(t, err)

	_, err = r.ConvertFile(in, OutputPath(in))
	require.NoError(t, err)

	assert.Contains(t, rec.warnings, in+": [annotations] 1: [dangling_image_id] image_id 9 names no image")
}
