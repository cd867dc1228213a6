package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/service"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/surface"
	"github.com/paulmach/orb/maptile"
)

var ErrTilesDisabled = errors.New("local venue tiles are disabled")

type Application interface {
	GetMapStyle(ctx context.Context) (entities.MapStyle, error)
	GetTile(ctx context.Context, x, y, z uint32, acceptGzip bool) ([]byte, error)
	GetClientConfig(ctx context.Context) entities.ClientConfig
	OpenSession(ctx context.Context, sink surface.CommandSink) (*Session, error)
}

// SurfaceFactory creates the render-state store backing one session.
type SurfaceFactory func(home entities.Camera, sink surface.CommandSink) surface.MapSurface

type Dependencies struct {
	StyleService service.MapStyleService
	// TilesService is nil when venues come from the hosted tileset.
	TilesService service.MapTilesService
	Overlays     *service.OverlayLoader
	Table        *service.StyleEncodingTable
	Markers      service.MarkerLayerConfig

	HoverClearOnEmpty bool
	AccessToken       string
	BaseStyle         string

	NewSurface SurfaceFactory
	Logger     *slog.Logger
}

type application struct {
	deps Dependencies
}

func New(deps Dependencies) Application {
	return &application{
		deps: deps,
	}
}

func (app *application) GetMapStyle(ctx context.Context) (entities.MapStyle, error) {
	return app.deps.StyleService.GetMapStyle(ctx)
}

func (app *application) GetTile(ctx context.Context, x, y, z uint32, acceptGzip bool) ([]byte, error) {
	if app.deps.TilesService == nil {
		return nil, ErrTilesDisabled
	}

	tile := maptile.Tile{
		X: x,
		Y: y,
		Z: maptile.Zoom(z),
	}
	return app.deps.TilesService.GetMapTile(ctx, tile, acceptGzip)
}

func (app *application) GetClientConfig(ctx context.Context) entities.ClientConfig {
	home := app.deps.Markers.Home

	return entities.ClientConfig{
		AccessToken:   app.deps.AccessToken,
		BaseStyle:     app.deps.BaseStyle,
		Center:        []float64{home.Center.Lon(), home.Center.Lat()},
		Zoom:          home.Zoom,
		MarkerLayerID: app.deps.Markers.LayerID,
		SessionPath:   "/session",
	}
}
