package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/paulkoehlerdev/VenueMap/pkg/libraries/logging"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/application"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/config"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/service"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/surface"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/infrastructure"
	venuehttp "github.com/paulkoehlerdev/VenueMap/pkg/venuemap/interface/http"
	"github.com/paulmach/orb"
)

const usage = `usage:
  venuemap              serve the map
  venuemap import FILE  import venues (.osm, .osm.bz2, .osm.pbf, .geojson) into the local database`

func main() {
	_ = godotenv.Load(".env")

	configDir := os.Getenv("VENUEMAP_CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]
	switch {
	case len(args) == 0:
		err = serve(ctx, cfg, configDir, logger)
	case len(args) == 2 && args[0] == "import":
		err = importVenues(ctx, cfg, args[1], logger)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("venuemap failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func home(cfg config.Config) entities.Camera {
	return entities.Camera{
		Center: orb.Point{cfg.Map.Home.Longitude, cfg.Map.Home.Latitude},
		Zoom:   cfg.Map.Home.Zoom,
	}
}

func importVenues(ctx context.Context, cfg config.Config, path string, logger *slog.Logger) error {
	repo, err := infrastructure.NewSqliteVenueRepository(cfg.Venues.Database)
	if err != nil {
		return err
	}
	defer repo.Close()

	start := time.Now()
	if err := repo.Import(ctx, path); err != nil {
		return err
	}

	center := entities.Venue{
		Type:     cfg.Icon.MarkerType,
		Name:     cfg.Icon.MarkerType,
		Location: home(cfg).Center,
	}
	if _, err := repo.AddVenue(ctx, center); err != nil {
		return fmt.Errorf("failed to add center venue: %w", err)
	}

	logger.Info("imported venues", "file", path, "database", cfg.Venues.Database, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func serve(ctx context.Context, cfg config.Config, configDir string, logger *slog.Logger) error {
	table, err := service.NewStyleEncodingTable(cfg.Style.Categories, service.EncodingDefaults{
		Radius:    cfg.Style.DefaultRadius,
		Color:     cfg.Style.DefaultColor,
		Highlight: cfg.Style.HighlightColor,
	})
	if err != nil {
		return err
	}

	markers := service.MarkerLayerConfig{
		SourceID:      cfg.Venues.SourceID,
		SourceLayer:   cfg.Venues.SourceLayer,
		LayerID:       cfg.Venues.LayerID,
		CircleOpacity: cfg.Venues.CircleOpacity,
		Home:          home(cfg),
	}

	var tiles service.MapTilesService
	if cfg.Venues.Mode == config.VenueModeLocal {
		repo, err := infrastructure.NewSqliteVenueRepository(cfg.Venues.Database)
		if err != nil {
			return err
		}
		defer repo.Close()

		tiles = service.NewMapTilesService(repo, cfg.Venues.SourceLayer)
		markers.Source = entities.Source{
			Type:      "vector",
			TilesURLs: []string{strings.TrimSuffix(cfg.PublicURL, "/") + "/tiles/{z}/{x}/{y}"},
		}
	} else {
		markers.Source = entities.Source{
			Type: "vector",
			URL:  cfg.Venues.URL,
		}
	}

	icon := service.IconConfig{
		Location:   cfg.Icon.Path,
		Name:       cfg.Icon.Name,
		LayerID:    cfg.Icon.LayerID,
		Size:       cfg.Icon.Size,
		MarkerType: cfg.Icon.MarkerType,
	}

	boundary := service.BoundaryConfig{
		Location:     cfg.Boundary.Path,
		SourceID:     cfg.Boundary.SourceID,
		LayerID:      cfg.Boundary.LayerID,
		FillColor:    cfg.Boundary.FillColor,
		FillOpacity:  cfg.Boundary.FillOpacity,
		OutlineColor: cfg.Boundary.OutlineColor,
	}

	resources := infrastructure.NewCachingResourceRepository(configDir, &http.Client{Timeout: 30 * time.Second})

	app := application.New(application.Dependencies{
		StyleService:      service.NewMapStyleService(markers, icon, table),
		TilesService:      tiles,
		Overlays:          service.NewOverlayLoader(resources, logger, markers, icon, boundary),
		Table:             table,
		Markers:           markers,
		HoverClearOnEmpty: cfg.Hover.ClearOnEmpty,
		AccessToken:       cfg.Map.AccessToken,
		BaseStyle:         cfg.Map.BaseStyle,
		NewSurface: func(home entities.Camera, sink surface.CommandSink) surface.MapSurface {
			return infrastructure.NewSessionSurface(home, sink)
		},
		Logger: logger,
	})

	listener, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Listen, err)
	}

	logger.Info("starting venuemap", "mode", cfg.Venues.Mode, "public_url", cfg.PublicURL)

	return venuehttp.ServeApplication(ctx, listener, app, logger)
}
