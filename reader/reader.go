// Package reader loads TSP instances from plain coordinate files.
//
// Two layouts are accepted:
//
//	# plain: one point per line, "x y" or "id x y"
//	1 0.0 0.0
//	2 3.0 4.0
//
//	NAME : berlin52          (TSPLIB: header lines are skipped,
//	TYPE : TSP                coordinates follow NODE_COORD_SECTION
//	NODE_COORD_SECTION        until EOF)
//	1 565.0 575.0
//	EOF
//
// Blank lines and lines starting with '#' are ignored in both layouts. With
// two tokens the point ID is the 1-based ordinal of the line among the
// coordinate lines; tokens past the third are ignored.
package reader

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tspsolver/tsp"
)

var (
	// ErrCoordLineTooShort is returned for a coordinate line with fewer than two tokens.
	ErrCoordLineTooShort = errors.New("reader: coordinate line has fewer than 2 values")

	// ErrUnparsableCoord is returned when a token is not a number.
	ErrUnparsableCoord = errors.New("reader: unparsable coordinate")

	// ErrInstanceNotFound is returned when the instance file cannot be opened or read.
	ErrInstanceNotFound = errors.New("reader: instance not found")
)

const (
	sectionStart = "NODE_COORD_SECTION"
	sectionEnd   = "EOF"

	maxLineBytes = 1024 * 1024
)

type line struct {
	no   int
	text string
}

// Read loads the points of the instance file at path.
func Read(path string) ([]tsp.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrInstanceNotFound, "%s: %v", path, err)
	}
	defer f.Close()

	pts, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return pts, nil
}

// ParseString parses an instance held in memory.
func ParseString(s string) ([]tsp.Point, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads every coordinate line from r. Parsing stops at the first bad
// line; no partial instance is returned.
func Parse(r io.Reader) ([]tsp.Point, error) {
	lines, tsplib, err := scan(r)
	if err != nil {
		return nil, err
	}

	pts := make([]tsp.Point, 0, len(lines))
	inSection := !tsplib
	for _, l := range lines {
		keyword := strings.ToUpper(l.text)
		if tsplib {
			if !inSection {
				inSection = keyword == sectionStart
				continue
			}
			if keyword == sectionEnd {
				break
			}
		}

		p, err := parsePoint(l.text, len(pts)+1)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", l.no)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// scan collects the non-blank, non-comment lines of r and reports whether a
// NODE_COORD_SECTION keyword is present.
func scan(r io.Reader) ([]line, bool, error) {
	var (
		lines  []line
		tsplib bool
		no     int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if strings.EqualFold(text, sectionStart) {
			tsplib = true
		}
		lines = append(lines, line{no: no, text: text})
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, false, errors.Wrapf(ErrUnparsableCoord, "line %d: longer than %d bytes", no+1, maxLineBytes)
		}
		return nil, false, errors.Wrap(err, "read instance")
	}
	return lines, tsplib, nil
}

func parsePoint(text string, ordinal int) (tsp.Point, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return tsp.Point{}, errors.Wrapf(ErrCoordLineTooShort, "%q", text)
	}

	vals := make([]float64, 0, 3)
	for _, f := range fields[:min(len(fields), 3)] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return tsp.Point{}, errors.Wrapf(ErrUnparsableCoord, "%q", f)
		}
		vals = append(vals, v)
	}

	if len(vals) == 2 {
		return tsp.Point{ID: ordinal, X: vals[0], Y: vals[1]}, nil
	}
	if vals[0] != math.Trunc(vals[0]) || math.IsInf(vals[0], 0) {
		return tsp.Point{}, errors.Wrapf(ErrUnparsableCoord, "id %q is not an integer", fields[0])
	}
	// float64(math.MinInt) is exact; -float64(math.MinInt) is the first value past MaxInt.
	if vals[0] < float64(math.MinInt) || vals[0] >= -float64(math.MinInt) {
		return tsp.Point{}, errors.Wrapf(ErrUnparsableCoord, "id %q out of range", fields[0])
	}
	return tsp.Point{ID: int(vals[0]), X: vals[1], Y: vals[2]}, nil
}
