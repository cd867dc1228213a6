package infrastructure

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
)

type sqlitevenueimporter struct {
	insertVenuePreparedStatement *sql.Stmt
}

func (s *sqlitevenueimporter) init(tx *sql.Tx) error {
	if err := s.prepareStatements(tx); err != nil {
		return fmt.Errorf("failed to prepare statements: %w", err)
	}

	return nil
}

func (s *sqlitevenueimporter) prepareStatements(tx *sql.Tx) error {
	var err error

	s.insertVenuePreparedStatement, err = tx.Prepare(
		"INSERT OR REPLACE INTO venue (venue_id, type, name, tel, website, lon, lat) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}

	return nil
}

// importObject stores tagged venue nodes. Ways and relations carry no
// coordinates of their own and are skipped.
func (s *sqlitevenueimporter) importObject(obj osm.Object) error {
	node, ok := obj.(*osm.Node)
	if !ok {
		return nil
	}

	category, ok := venueCategory(node.Tags)
	if !ok {
		return nil
	}

	// negative ids belong to unsaved edits; let the database assign one
	var id entities.VenueID
	if node.ID > 0 {
		id = entities.VenueID(node.ID)
	}

	return s.importVenue(entities.Venue{
		ID:       id,
		Type:     category,
		Name:     node.Tags.Find("name"),
		Tel:      firstTag(node.Tags, "phone", "contact:phone"),
		Website:  firstTag(node.Tags, "website", "contact:website", "url"),
		Location: orb.Point{node.Lon, node.Lat},
	})
}

func (s *sqlitevenueimporter) importVenue(venue entities.Venue) error {
	var id any
	if venue.ID != 0 {
		id = int64(venue.ID)
	}

	_, err := s.insertVenuePreparedStatement.Exec(
		id, venue.Type, venue.Name, venue.Tel, venue.Website, venue.Location.Lon(), venue.Location.Lat(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert venue: %w", err)
	}

	return nil
}

// venueCategory maps OSM tags onto the marker categories.
func venueCategory(tags osm.Tags) (string, bool) {
	amenity := tags.Find("amenity")
	genre := tags.Find("theatre:genre")

	switch {
	case amenity == "theatre" && genre == "opera":
		return "Opera house", true
	case amenity == "theatre" && (genre == "comedy" || genre == "stand_up"):
		return "Comedy club", true
	case amenity == "comedy_club":
		return "Comedy club", true
	case amenity == "theatre":
		return "Performing arts theater", true
	case amenity == "cinema":
		return "Movie theater", true
	case amenity == "arts_centre":
		return "Cultural center", true
	case amenity == "community_centre" && tags.Find("community_centre") == "cultural_centre":
		return "Cultural center", true
	case amenity == "concert_hall":
		return "Concert hall", true
	case amenity == "music_venue":
		return "Live music venue", true
	case amenity == "nightclub" && tags.Find("live_music") == "yes":
		return "Live music venue", true
	case amenity == "events_venue" || amenity == "conference_centre":
		return "Event venue", true
	}

	return "", false
}

func firstTag(tags osm.Tags, keys ...string) string {
	for _, key := range keys {
		if v := tags.Find(key); v != "" {
			return v
		}
	}
	return ""
}

// venuesFromGeoJSON reads point features carrying the tileset properties.
// Non-point features are ignored.
func venuesFromGeoJSON(data []byte) ([]entities.Venue, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geojson venue file: %w", err)
	}

	var venues []entities.Venue
	for _, f := range fc.Features {
		point, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}

		props := map[string]any(f.Properties)
		venues = append(venues, entities.Venue{
			ID:       venueID(f.ID),
			Type:     entities.PropertyString(props, entities.PropertyType),
			Name:     entities.PropertyString(props, entities.PropertyName),
			Tel:      entities.PropertyString(props, entities.PropertyTel),
			Website:  entities.PropertyString(props, entities.PropertyWebsite),
			Location: point,
		})
	}

	return venues, nil
}

func venueID(id any) entities.VenueID {
	switch v := id.(type) {
	case float64:
		if v > 0 && v == math.Trunc(v) {
			return entities.VenueID(v)
		}
	case int:
		if v > 0 {
			return entities.VenueID(v)
		}
	case uint64:
		return entities.VenueID(v)
	}
	return 0
}
