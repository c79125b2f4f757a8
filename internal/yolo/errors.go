package yolo

import (
	"fmt"
	"strings"
)

// MalformedLineError reports a label line that is not
// "<int> <float> <float> <float> <float>".
type MalformedLineError struct {
	Path   string
	Line   int
	Text   string
	Fields int
	Err    error
}

func (e *MalformedLineError) Error() string {
	var loc []string
	if e.Path != "" {
		loc = append(loc, e.Path)
	}

	if e.Line > 0 {
		loc = append(loc, fmt.Sprint(e.Line))
	}

	msg := fmt.Sprintf("malformed label line %q", e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	} else {
		msg += fmt.Sprintf(": want %d fields, got %d", FieldCount, e.Fields)
	}

	if len(loc) > 0 {
		return strings.Join(loc, ":") + ": " + msg
	}

	return msg
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}
