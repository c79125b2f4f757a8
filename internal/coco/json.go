package coco

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

var (
	documentKeys   = []string{"info", "licenses", "images", "annotations", "categories"}
	imageKeys      = []string{"id", "file_name", "width", "height"}
	annotationKeys = []string{"id", "image_id", "category_id"}
)

// Plain aliases drop the JSON methods so the typed fields can be encoded
// and decoded with the default rules.
type (
	plainDocument   Document
	plainImage      Image
	plainAnnotation Annotation
)

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	extra, err := splitExtra(data, documentKeys)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, (*plainDocument)(d)); err != nil {
		return err
	}

	d.Extra = extra

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	if d.Images == nil {
		d.Images = []Image{}
	}

	if d.Annotations == nil {
		d.Annotations = []Annotation{}
	}

	if d.Categories == nil {
		d.Categories = []Category{}
	}

	obj, err := encodeValue(plainDocument(d))
	if err != nil {
		return nil, err
	}

	return appendExtra(obj, d.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (img *Image) UnmarshalJSON(data []byte) error {
	extra, err := splitExtra(data, imageKeys)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, (*plainImage)(img)); err != nil {
		return err
	}

	img.Extra = extra

	return nil
}

// MarshalJSON implements json.Marshaler.
func (img Image) MarshalJSON() ([]byte, error) {
	obj, err := encodeValue(plainImage(img))
	if err != nil {
		return nil, err
	}

	return appendExtra(obj, img.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Annotation) UnmarshalJSON(data []byte) error {
	extra, err := splitExtra(data, annotationKeys)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, (*plainAnnotation)(a)); err != nil {
		return err
	}

	a.Extra = extra

	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Annotation) MarshalJSON() ([]byte, error) {
	obj, err := encodeValue(plainAnnotation(a))
	if err != nil {
		return nil, err
	}

	return appendExtra(obj, a.Extra)
}

// encodeValue encodes v without HTML escaping and without the trailing newline.
func encodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// splitExtra returns the keys of a JSON object that are not in known.
func splitExtra(data []byte, known []string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	for _, k := range known {
		delete(all, k)
	}

	if len(all) == 0 {
		return nil, nil
	}

	return all, nil
}

// appendExtra splices the extra keys, sorted, into the encoded object obj.
func appendExtra(obj []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return obj, nil
	}

	if len(obj) < 2 || obj[len(obj)-1] != '}' {
		return nil, fmt.Errorf("cannot append extra keys to %q", obj)
	}

	var buf bytes.Buffer

	buf.Write(obj[:len(obj)-1])

	empty := bytes.Equal(bytes.TrimSpace(obj), []byte("{}"))

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		if !empty {
			buf.WriteByte(',')
		}

		empty = false

		key, err := encodeValue(k)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(extra[k])
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func setExtra(extra *map[string]json.RawMessage, key string, value any) error {
	raw, err := encodeValue(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}

	if *extra == nil {
		*extra = make(map[string]json.RawMessage)
	}

	(*extra)[key] = raw

	return nil
}
