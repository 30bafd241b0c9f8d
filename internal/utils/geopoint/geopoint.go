package geopoint

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Donation coordinates travel as text in the form "(longitude,latitude)".
// Records without usable coordinates carry the origin sentinel "(0,0)".

const Origin = "(0,0)"

var ErrMalformedPoint = errors.New("malformed point")

var pointPattern = regexp.MustCompile(`^\((.+),(.+)\)$`)

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Encode renders a point as "(lng,lat)" text.
func Encode(p Point) string {
	return fmt.Sprintf("(%v,%v)", p.Lng, p.Lat)
}

// Parse reads "(lng,lat)" text back into a point. Callers are expected to
// skip records whose location does not parse rather than fail the request.
func Parse(s string) (Point, error) {
	match := pointPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Point{}, ErrMalformedPoint
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(match[1]), 64)
	if err != nil {
		return Point{}, ErrMalformedPoint
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(match[2]), 64)
	if err != nil {
		return Point{}, ErrMalformedPoint
	}

	return Point{Lat: lat, Lng: lng}, nil
}

// IsOrigin reports whether the encoded point is the "no coordinates" sentinel.
func IsOrigin(s string) bool {
	p, err := Parse(s)
	if err != nil {
		return false
	}
	return p.Lat == 0 && p.Lng == 0
}
