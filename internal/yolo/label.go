package yolo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"coco-prep/internal/coco"
)

// FieldCount is the number of whitespace-separated fields of a label line.
const FieldCount = 5

// ErrNonFinite marks a coordinate that parsed as NaN or an infinity.
var ErrNonFinite = errors.New("non-finite coordinate")

// Label is one object of a label file, in normalized coordinates.
type Label struct {
	ClassID int
	CenterX float64
	CenterY float64
	Width   float64
	Height  float64
}

// Box converts the label to a COCO box on an image of the given size.
func (l Label) Box(imgWidth, imgHeight int) coco.BBox {
	w, h := float64(imgWidth), float64(imgHeight)

	cx := l.CenterX * w
	cy := l.CenterY * h
	bw := l.Width * w
	bh := l.Height * h

	return coco.BBox{cx - bw/2, cy - bh/2, bw, bh}
}

// ParseLine parses a single non-empty label line.
func ParseLine(line string) (Label, error) {
	fields := strings.Fields(line)
	if len(fields) != FieldCount {
		return Label{}, &MalformedLineError{Text: line, Fields: len(fields)}
	}

	classID, err := strconv.Atoi(fields[0])
	if err != nil {
		return Label{}, &MalformedLineError{Text: line, Fields: len(fields), Err: err}
	}

	var coords [4]float64

	for i := range coords {
		coords[i], err = strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Label{}, &MalformedLineError{Text: line, Fields: len(fields), Err: err}
		}

		if math.IsNaN(coords[i]) || math.IsInf(coords[i], 0) {
			err = fmt.Errorf("%w %q", ErrNonFinite, fields[i+1])
			return Label{}, &MalformedLineError{Text: line, Fields: len(fields), Err: err}
		}
	}

	return Label{
		ClassID: classID,
		CenterX: coords[0],
		CenterY: coords[1],
		Width:   coords[2],
		Height:  coords[3],
	}, nil
}

// Parse reads labels line by line. Blank lines are ignored; malformed lines
// are skipped and returned as *MalformedLineError values in skipped, with
// their 1-based line number. err is set only when reading fails.
func Parse(r io.Reader) (labels []Label, skipped []error, err error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		label, perr := ParseLine(line)
		if perr != nil {
			var mle *MalformedLineError
			if errors.As(perr, &mle) {
				mle.Line = lineNo
			}

			skipped = append(skipped, perr)

			continue
		}

		labels = append(labels, label)
	}

	if err := sc.Err(); err != nil {
		return labels, skipped, fmt.Errorf("reading labels: %w", err)
	}

	return labels, skipped, nil
}

// ParseFile parses the label file at path. A missing file yields a
// *coco.MissingFileError; skipped lines carry the path.
func ParseFile(path string) ([]Label, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, &coco.MissingFileError{Path: path, Err: err}
		}

		return nil, nil, fmt.Errorf("opening label file %s: %w", path, err)
	}
	defer f.Close()

	labels, skipped, err := Parse(f)
	for _, s := range skipped {
		var mle *MalformedLineError
		if errors.As(s, &mle) {
			mle.Path = path
		}
	}

	if err != nil {
		return labels, skipped, fmt.Errorf("%s: %w", path, err)
	}

	return labels, skipped, nil
}
