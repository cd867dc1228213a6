package entities

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature property keys provided by the venue tileset.
const (
	PropertyType    = "Type"
	PropertyName    = "Name"
	PropertyTel     = "Tel"
	PropertyWebsite = "website"
)

// VenueID is the numeric id a stored venue carries as its tile feature id.
type VenueID uint64

// Venue is one point of the venue tileset.
type Venue struct {
	ID       VenueID
	Type     string
	Name     string
	Tel      string
	Website  string
	Location orb.Point
}

// Feature converts the venue into a GeoJSON point feature carrying the tileset properties.
func (v Venue) Feature() *geojson.Feature {
	f := geojson.NewFeature(v.Location)
	f.ID = uint64(v.ID)
	f.Properties[PropertyType] = v.Type
	f.Properties[PropertyName] = v.Name
	if v.Tel != "" {
		f.Properties[PropertyTel] = v.Tel
	}
	f.Properties[PropertyWebsite] = v.Website
	return f
}

// PropertyString reads a feature property as text. Missing or null values yield "".
func PropertyString(properties map[string]any, key string) string {
	switch v := properties[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
