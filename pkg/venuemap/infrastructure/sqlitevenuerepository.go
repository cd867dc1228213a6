package infrastructure

import (
	"compress/bzip2"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/paulkoehlerdev/VenueMap/migrations"
	"github.com/paulkoehlerdev/VenueMap/pkg/libraries/sqlitedriver"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/repository"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

var _ repository.VenueRepository = (*SqliteVenueRepository)(nil)

func NewSqliteVenueRepository(sqliteConnString string) (*SqliteVenueRepository, error) {
	sqlConn, err := sql.Open(sqlitedriver.DriverName, sqliteConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to open venue database connection: %w", err)
	}

	// every connection to ":memory:" is its own database
	if strings.Contains(sqliteConnString, ":memory:") {
		sqlConn.SetMaxOpenConns(1)
	}

	return (&SqliteVenueRepository{
		conn: sqlConn,
	}).init()
}

type SqliteVenueRepository struct {
	conn *sql.DB
}

func (s *SqliteVenueRepository) init() (*SqliteVenueRepository, error) {
	file, err := migrations.FS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}

	for _, query := range strings.Split(string(file), ";") {
		if strings.TrimSpace(query) == "" {
			continue
		}
		if _, err := s.conn.Exec(query); err != nil {
			return nil, fmt.Errorf("failed to execute schema file at query %s: %w", query, err)
		}
	}

	return s, nil
}

func (s *SqliteVenueRepository) Close() error {
	return s.conn.Close()
}

// Import loads venues from an OSM dump ('.osm', '.osm.bz2', '.osm.pbf') or
// from a GeoJSON point collection ('.geojson', '.json').
func (s *SqliteVenueRepository) Import(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open venue import file: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".geojson") || strings.HasSuffix(path, ".json") {
		return s.importGeoJSON(ctx, f)
	}

	var scanner osm.Scanner
	if strings.HasSuffix(path, ".osm.pbf") {
		scanner = osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	} else if strings.HasSuffix(path, ".osm.bz2") {
		compressedReader := bzip2.NewReader(f)
		scanner = osmxml.New(ctx, compressedReader)
	} else if strings.HasSuffix(path, ".osm") {
		scanner = osmxml.New(ctx, f)
	} else {
		return fmt.Errorf("venue import file must either be a '.osm'-XML, a '.osm.bz2'-compressed-XML, a '.osm.pbf'-protobuf or a '.geojson' file")
	}
	defer scanner.Close()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start venue database transaction: %w", err)
	}
	defer tx.Rollback()

	importer := sqlitevenueimporter{}
	err = importer.init(tx)
	if err != nil {
		return fmt.Errorf("failed to create sqliteimporter: %w", err)
	}

	for scanner.Scan() {
		err := importer.importObject(scanner.Object())
		if err != nil {
			return fmt.Errorf("failed to import osm object: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to import osm dump file: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit venue database transaction: %w", err)
	}

	return nil
}

func (s *SqliteVenueRepository) importGeoJSON(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read geojson venue file: %w", err)
	}

	venues, err := venuesFromGeoJSON(data)
	if err != nil {
		return err
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start venue database transaction: %w", err)
	}
	defer tx.Rollback()

	importer := sqlitevenueimporter{}
	if err := importer.init(tx); err != nil {
		return fmt.Errorf("failed to create sqliteimporter: %w", err)
	}

	for _, venue := range venues {
		if err := importer.importVenue(venue); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit venue database transaction: %w", err)
	}

	return nil
}

// AddVenue stores a single venue. A zero ID lets the database assign one.
func (s *SqliteVenueRepository) AddVenue(ctx context.Context, venue entities.Venue) (entities.VenueID, error) {
	var id any
	if venue.ID != 0 {
		id = int64(venue.ID)
	}

	result, err := s.conn.ExecContext(ctx,
		"INSERT OR REPLACE INTO venue (venue_id, type, name, tel, website, lon, lat) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, venue.Type, venue.Name, venue.Tel, venue.Website, venue.Location.Lon(), venue.Location.Lat(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert venue: %w", err)
	}

	rowID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read venue id: %w", err)
	}

	return entities.VenueID(rowID), nil
}

func (s *SqliteVenueRepository) GetVenues(ctx context.Context, bound orb.Bound) ([]entities.Venue, error) {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT venue_id, type, name, tel, website, lon, lat FROM venue WHERE lon BETWEEN ? AND ? AND lat BETWEEN ? AND ? ORDER BY venue_id",
		bound.Left(), bound.Right(), bound.Bottom(), bound.Top(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	var venues []entities.Venue
	for rows.Next() {
		var (
			venue    entities.Venue
			id       int64
			lon, lat float64
		)
		if err := rows.Scan(&id, &venue.Type, &venue.Name, &venue.Tel, &venue.Website, &lon, &lat); err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venue.ID = entities.VenueID(id)
		venue.Location = orb.Point{lon, lat}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read venues: %w", err)
	}

	return venues, nil
}
