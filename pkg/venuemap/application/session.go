package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/paulkoehlerdev/VenueMap/pkg/libraries/metrics"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/service"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/surface"
)

var (
	ErrUnknownEvent   = errors.New("unknown event type")
	ErrUnknownCommand = errors.New("unknown command")
)

// cameraRecorder is implemented by surfaces that track camera moves made in the browser.
type cameraRecorder interface {
	MoveCamera(camera entities.Camera)
}

// Session drives the map of one browser. Handle must not be called concurrently.
type Session struct {
	ID string

	surface surface.MapSurface
	markers *service.MarkerLayerController
	hover   *service.HoverTracker
	logger  *slog.Logger

	cancel       context.CancelFunc
	overlaysDone chan struct{}
	overlaysErr  error
	closeOnce    sync.Once
}

// OpenSession declares the marker layer synchronously and starts the overlay
// loads in the background.
func (app *application) OpenSession(ctx context.Context, sink surface.CommandSink) (*Session, error) {
	deps := app.deps
	id := uuid.NewString()
	logger := deps.Logger.With("session", id)

	s := deps.NewSurface(deps.Markers.Home, sink)

	markers, err := service.NewMarkerLayerController(s, deps.Table, deps.Markers)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize marker layer: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	session := &Session{
		ID:           id,
		surface:      s,
		markers:      markers,
		hover:        service.NewHoverTracker(s, deps.Markers.SourceID, deps.Markers.SourceLayer, deps.HoverClearOnEmpty),
		logger:       logger,
		cancel:       cancel,
		overlaysDone: make(chan struct{}),
	}

	go func() {
		defer close(session.overlaysDone)

		if err := deps.Overlays.Load(ctx, s); err != nil {
			logger.Error("failed to load icon overlay", "error", err)
			s.ReportError(err)
			session.overlaysErr = err
		}
	}()

	metrics.ActiveSessions.Inc()
	logger.Info("session opened")

	return session, nil
}

// Handle applies one browser event.
func (s *Session) Handle(event entities.Event) error {
	metrics.SessionEventsTotal.WithLabelValues(string(event.Type)).Inc()

	switch event.Type {
	case entities.EventPointerMove:
		s.hover.PointerMove(event.Features)
	case entities.EventPointerLeave:
		s.hover.PointerLeave()
	case entities.EventClick:
		s.markers.Click(event.Features, event.LngLat)
	case entities.EventMoveEnd:
		if recorder, ok := s.surface.(cameraRecorder); ok {
			recorder.MoveCamera(entities.Camera{Center: event.LngLat, Zoom: event.Zoom})
		}
	case entities.EventCommand:
		return s.command(event.Name)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event.Type)
	}

	return nil
}

func (s *Session) command(name string) error {
	switch name {
	case entities.CommandToggleLayer:
		s.markers.ToggleVisibility()
	case entities.CommandResetView:
		s.markers.ResetView()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	s.logger.Debug("command handled", "command", name)
	return nil
}

// Hovered reports the feature currently in hover state.
func (s *Session) Hovered() (entities.FeatureID, bool) {
	return s.hover.Hovered()
}

// WaitOverlays blocks until both overlay loads finished or ctx is done and
// returns the icon load error.
func (s *Session) WaitOverlays(ctx context.Context) error {
	select {
	case <-s.overlaysDone:
		return s.overlaysErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels pending overlay loads and waits for them to return.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.overlaysDone
		metrics.ActiveSessions.Dec()
		s.logger.Info("session closed")
	})
}
