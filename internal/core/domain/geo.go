package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a GeoJSON point. Coordinates are [longitude, latitude].
type Point struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewPoint builds a GeoJSON point from a longitude/latitude pair.
func NewPoint(lng, lat float64) Point {
	return Point{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Polygon is a GeoJSON polygon: one or more closed linear rings.
type Polygon struct {
	Type        string        `json:"type" bson:"type"`
	Coordinates [][][]float64 `json:"coordinates" bson:"coordinates"`
}

// Corner is one diagonal corner of a query rectangle.
type Corner struct {
	Lat float64
	Lng float64
}

// ParseCorner parses a "lat,lng" pair. Components are integer-valued;
// anything non-numeric fails with ErrInvalidInput.
func ParseCorner(s string) (Corner, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Corner{}, fmt.Errorf("%w: corner must be \"lat,lng\", got %q", ErrInvalidInput, s)
	}
	lat, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Corner{}, fmt.Errorf("%w: latitude %q is not a number", ErrInvalidInput, parts[0])
	}
	lng, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Corner{}, fmt.Errorf("%w: longitude %q is not a number", ErrInvalidInput, parts[1])
	}
	return Corner{Lat: float64(lat), Lng: float64(lng)}, nil
}

// RectangleBounds builds the closed ring implied by two diagonal corners,
// ordered top-right, top-left, bottom-left, bottom-right and closed back on
// the first point. Coincident corners yield a valid zero-area ring; a
// containment query against it simply matches nothing.
func RectangleBounds(topRight, bottomLeft Corner) Polygon {
	ring := [][]float64{
		{topRight.Lng, topRight.Lat},
		{bottomLeft.Lng, topRight.Lat},
		{bottomLeft.Lng, bottomLeft.Lat},
		{topRight.Lng, bottomLeft.Lat},
		{topRight.Lng, topRight.Lat},
	}
	return Polygon{Type: "Polygon", Coordinates: [][][]float64{ring}}
}
