package geo3

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParsePoint decodes a Point from a string holding exactly three
// whitespace-separated scalars, e.g. "1.5 -2 3e4". NaN and Inf tokens are
// accepted. The bracketed String form is not valid input.
//
// Decoding is fail-fast: on malformed input the zero Point is returned
// together with an *ErrMalformedPoint, and no partial coordinates are
// reported.
func ParsePoint(s string) (Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		coord := len(fields)
		if coord > 3 {
			coord = 3
		}
		return Point{}, &ErrMalformedPoint{Input: s, Coordinate: coord}
	}

	var coords [3]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Point{}, &ErrMalformedPoint{Input: s, Coordinate: i, cause: err}
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ReadPoint decodes the next Point from r: three whitespace-separated
// scalars, with newlines counting as whitespace. It consumes one point's
// worth of tokens, so consecutive calls decode consecutive points from the
// same stream.
//
// Like ParsePoint it is fail-fast: any decode failure returns the zero
// Point and an *ErrMalformedPoint whose Coordinate reports how many
// scalars were read before the failure.
func ReadPoint(r io.Reader) (Point, error) {
	var x, y, z float64
	n, err := fmt.Fscan(r, &x, &y, &z)
	if err != nil {
		return Point{}, &ErrMalformedPoint{Coordinate: n, cause: err}
	}
	return Point{X: x, Y: y, Z: z}, nil
}
