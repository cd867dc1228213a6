package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
)

const (
	DefaultMarkerRadius   = 10
	DefaultMarkerColor    = "#ccc"
	DefaultHighlightColor = "#ffffff"
)

var ErrInvalidCategory = errors.New("invalid marker category")

// DefaultCategories is the encoding of the venue types present in the Toronto tileset.
func DefaultCategories() []entities.Category {
	return []entities.Category{
		{Label: "Comedy club", Radius: 6, Color: "#e73649"},
		{Label: "Cultural center", Radius: 8, Color: "#ee7d09"},
		{Label: "Concert hall", Radius: 10, Color: "#f8bd00"},
		{Label: "Opera house", Radius: 12, Color: "#96c535"},
		{Label: "Event venue", Radius: 14, Color: "#00a496"},
		{Label: "Movie theater", Radius: 16, Color: "#0091d8"},
		{Label: "Live music venue", Radius: 18, Color: "#d45f9d"},
		{Label: "Performing arts theater", Radius: 8, Color: "#844aa8"},
	}
}

// EncodingDefaults apply to categories missing from the table. Zero fields
// take the package defaults.
type EncodingDefaults struct {
	Radius    float64
	Color     string
	Highlight string
}

// StyleEncodingTable maps a venue category to its marker radius and color.
// It is immutable once built.
type StyleEncodingTable struct {
	labels []string
	radii  map[string]float64
	colors map[string]string

	defaultRadius  float64
	defaultColor   string
	highlightColor string
}

func NewStyleEncodingTable(categories []entities.Category, defaults EncodingDefaults) (*StyleEncodingTable, error) {
	t := &StyleEncodingTable{
		radii:          make(map[string]float64, len(categories)),
		colors:         make(map[string]string, len(categories)),
		defaultRadius:  defaults.Radius,
		defaultColor:   defaults.Color,
		highlightColor: defaults.Highlight,
	}
	if t.defaultRadius <= 0 {
		t.defaultRadius = DefaultMarkerRadius
	}
	if t.defaultColor == "" {
		t.defaultColor = DefaultMarkerColor
	}
	if t.highlightColor == "" {
		t.highlightColor = DefaultHighlightColor
	}

	for _, c := range categories {
		if c.Label == "" {
			return nil, fmt.Errorf("%w: empty label", ErrInvalidCategory)
		}
		if _, ok := t.radii[c.Label]; ok {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidCategory, c.Label)
		}
		if c.Radius <= 0 {
			return nil, fmt.Errorf("%w: radius of %q must be positive", ErrInvalidCategory, c.Label)
		}
		if c.Color == "" {
			return nil, fmt.Errorf("%w: empty color for %q", ErrInvalidCategory, c.Label)
		}

		t.radii[c.Label] = c.Radius
		t.colors[c.Label] = c.Color
		t.labels = append(t.labels, c.Label)
	}
	sort.Strings(t.labels)

	return t, nil
}

func (t *StyleEncodingTable) RadiusFor(category string) float64 {
	if r, ok := t.radii[category]; ok {
		return r
	}
	return t.defaultRadius
}

// ColorFor returns the marker color. The highlight color wins over the category color.
func (t *StyleEncodingTable) ColorFor(category string, isHovered bool) string {
	if isHovered {
		return t.highlightColor
	}
	if c, ok := t.colors[category]; ok {
		return c
	}
	return t.defaultColor
}

func (t *StyleEncodingTable) Labels() []string {
	labels := make([]string, len(t.labels))
	copy(labels, t.labels)
	return labels
}

// RadiusExpression compiles RadiusFor into a match expression on the Type property.
func (t *StyleEncodingTable) RadiusExpression() any {
	if len(t.labels) == 0 {
		return t.defaultRadius
	}

	expr := entities.Expression{"match", entities.Expression{"get", entities.PropertyType}}
	for _, label := range t.labels {
		expr = append(expr, label, t.radii[label])
	}
	return append(expr, t.defaultRadius)
}

// ColorExpression compiles ColorFor into a case on the hover feature state
// wrapping a match on the Type property.
func (t *StyleEncodingTable) ColorExpression() any {
	var category any = t.defaultColor
	if len(t.labels) > 0 {
		match := entities.Expression{"match", entities.Expression{"get", entities.PropertyType}}
		for _, label := range t.labels {
			match = append(match, label, t.colors[label])
		}
		category = append(match, t.defaultColor)
	}

	return entities.Expression{
		"case",
		entities.Expression{"boolean", entities.Expression{"feature-state", "hover"}, false},
		t.highlightColor,
		category,
	}
}
