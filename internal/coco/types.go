package coco

import (
	"encoding/json"
	"maps"
)

// Document is a COCO object-detection dataset.
type Document struct {
	Info        json.RawMessage `json:"info,omitempty"`
	Licenses    json.RawMessage `json:"licenses,omitempty"`
	Images      []Image         `json:"images"`
	Annotations []Annotation    `json:"annotations"`
	Categories  []Category      `json:"categories"`

	// Extra holds top-level keys this package does not interpret.
	Extra map[string]json.RawMessage `json:"-"`
}

// Image is an entry of the "images" section.
type Image struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`

	// Extra holds license, date_captured, flickr_url and any other keys.
	Extra map[string]json.RawMessage `json:"-"`
}

// Annotation is an entry of the "annotations" section.
// Only the ids are typed. bbox, area, segmentation, iscrowd and any other
// keys stay in Extra as read, so an edited copy differs only in the edited ids.
type Annotation struct {
	ID         int `json:"id"`
	ImageID    int `json:"image_id"`
	CategoryID int `json:"category_id"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Category is an entry of the "categories" section.
type Category struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Supercategory string `json:"supercategory"`
}

// BBox is a COCO box: top-left corner, width and height in pixels.
type BBox [4]float64

func (b BBox) X() float64      { return b[0] }
func (b BBox) Y() float64      { return b[1] }
func (b BBox) Width() float64  { return b[2] }
func (b BBox) Height() float64 { return b[3] }

// Area returns width * height.
func (b BBox) Area() float64 {
	return b[2] * b[3]
}

// Info is the "info" header written for generated datasets.
type Info struct {
	Description string `json:"description"`
	URL         string `json:"url"`
	Version     string `json:"version"`
	Year        int    `json:"year"`
	Contributor string `json:"contributor"`
	DateCreated string `json:"date_created"`
}

// License is an entry of the "licenses" header.
type License struct {
	URL  string `json:"url"`
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EmptySegmentation is the segmentation written for box-only annotations.
var EmptySegmentation = json.RawMessage(`[]`)

// NewDocument returns a document with empty, non-nil sections.
func NewDocument() *Document {
	return &Document{
		Images:      []Image{},
		Annotations: []Annotation{},
		Categories:  []Category{},
	}
}

// SetInfo replaces the "info" header.
func (d *Document) SetInfo(info Info) error {
	raw, err := encodeValue(info)
	if err != nil {
		return err
	}

	d.Info = raw

	return nil
}

// SetLicenses replaces the "licenses" header.
func (d *Document) SetLicenses(licenses []License) error {
	raw, err := encodeValue(licenses)
	if err != nil {
		return err
	}

	d.Licenses = raw

	return nil
}

// CategoryNames indexes the category names of the document by id.
func (d *Document) CategoryNames() map[int]string {
	names := make(map[int]string, len(d.Categories))
	for _, c := range d.Categories {
		names[c.ID] = c.Name
	}

	return names
}

// ImageIDs returns the set of image ids present in the document.
func (d *Document) ImageIDs() map[int]struct{} {
	ids := make(map[int]struct{}, len(d.Images))
	for _, img := range d.Images {
		ids[img.ID] = struct{}{}
	}

	return ids
}

// Clone returns a deep copy of the document.
// Raw JSON values are shared; they are never mutated in place.
func (d *Document) Clone() *Document {
	out := &Document{
		Info:        d.Info,
		Licenses:    d.Licenses,
		Images:      make([]Image, len(d.Images)),
		Annotations: make([]Annotation, len(d.Annotations)),
		Categories:  make([]Category, len(d.Categories)),
		Extra:       maps.Clone(d.Extra),
	}

	for i, img := range d.Images {
		img.Extra = maps.Clone(img.Extra)
		out.Images[i] = img
	}

	for i, ann := range d.Annotations {
		ann.Extra = maps.Clone(ann.Extra)
		out.Annotations[i] = ann
	}

	copy(out.Categories, d.Categories)

	return out
}

// Set stores an extra key on the image.
func (img *Image) Set(key string, value any) error {
	return setExtra(&img.Extra, key, value)
}

// Set stores an extra key on the annotation.
func (a *Annotation) Set(key string, value any) error {
	return setExtra(&a.Extra, key, value)
}

// SetBox stores bbox and its area.
func (a *Annotation) SetBox(b BBox) error {
	if err := a.Set("bbox", b); err != nil {
		return err
	}

	return a.Set("area", b.Area())
}
