package infrastructure

import (
	"fmt"
	"sync"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/surface"
)

var _ surface.MapSurface = (*SessionSurface)(nil)

// SessionSurface keeps the render state of one browser session and publishes
// every write to its sink. The sink is called with the lock held, so commands
// leave in the order the writes happened.
type SessionSurface struct {
	mu   sync.Mutex
	sink surface.CommandSink

	sources       map[string]entities.Source
	layers        []entities.Layer
	layout        map[string]map[string]string
	images        map[string]entities.Image
	featureStates map[entities.FeatureTarget]entities.FeatureState
	camera        entities.Camera
	popup         *entities.Popup
}

func NewSessionSurface(camera entities.Camera, sink surface.CommandSink) *SessionSurface {
	if sink == nil {
		sink = func(entities.Command) {}
	}

	return &SessionSurface{
		sink:          sink,
		sources:       make(map[string]entities.Source),
		layout:        make(map[string]map[string]string),
		images:        make(map[string]entities.Image),
		featureStates: make(map[entities.FeatureTarget]entities.FeatureState),
		camera:        camera,
	}
}

func (s *SessionSurface) AddSource(id string, source entities.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sources[id]; ok {
		return fmt.Errorf("failed to add source %q: %w", id, surface.ErrDuplicateSource)
	}
	s.sources[id] = source

	s.sink(entities.Command{Op: entities.OpAddSource, ID: id, Source: &source})
	return nil
}

func (s *SessionSurface) AddLayer(layer entities.Layer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.layout[layer.ID]; ok {
		return fmt.Errorf("failed to add layer %q: %w", layer.ID, surface.ErrDuplicateLayer)
	}
	if _, ok := s.sources[layer.Source]; !ok {
		return fmt.Errorf("failed to add layer %q on source %q: %w", layer.ID, layer.Source, surface.ErrUnknownSource)
	}

	props := make(map[string]string)
	if layer.Layout != nil && layer.Layout.Visibility != "" {
		props[entities.LayoutVisibility] = layer.Layout.Visibility
	}
	s.layout[layer.ID] = props
	s.layers = append(s.layers, layer)

	s.sink(entities.Command{Op: entities.OpAddLayer, Layer: &layer})
	return nil
}

func (s *SessionSurface) HasLayer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.layout[id]
	return ok
}

func (s *SessionSurface) HasImage(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.images[name]
	return ok
}

func (s *SessionSurface) AddImage(image entities.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.images[image.Name]; ok {
		return fmt.Errorf("failed to add image %q: %w", image.Name, surface.ErrDuplicateImage)
	}
	s.images[image.Name] = image

	s.sink(entities.Command{Op: entities.OpAddImage, ID: image.Name, Image: &image})
	return nil
}

func (s *SessionSurface) SetFeatureState(target entities.FeatureTarget, state entities.FeatureState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.featureStates[target] = state

	s.sink(entities.Command{Op: entities.OpSetFeatureState, Target: &target, State: &state})
}

func (s *SessionSurface) FeatureState(target entities.FeatureTarget) entities.FeatureState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.featureStates[target]
}

func (s *SessionSurface) LayoutProperty(layerID, name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	props, ok := s.layout[layerID]
	if !ok {
		return "", false
	}
	return props[name], true
}

func (s *SessionSurface) SetLayoutProperty(layerID, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	props, ok := s.layout[layerID]
	if !ok {
		return fmt.Errorf("failed to set %s on layer %q: %w", name, layerID, surface.ErrUnknownLayer)
	}
	props[name] = value

	s.sink(entities.Command{Op: entities.OpSetLayoutProperty, LayerID: layerID, Property: name, Value: value})
	return nil
}

func (s *SessionSurface) FlyTo(camera entities.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.camera = camera

	s.sink(entities.Command{Op: entities.OpFlyTo, Camera: &camera})
}

func (s *SessionSurface) Camera() entities.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.camera
}

// MoveCamera records a camera change made by the user in the browser. It is
// not echoed back.
func (s *SessionSurface) MoveCamera(camera entities.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.camera = camera
}

func (s *SessionSurface) ShowPopup(popup entities.Popup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.popup = &popup

	s.sink(entities.Command{Op: entities.OpShowPopup, Popup: &popup})
}

// Popup returns the open popup, if any. A new popup replaces the previous one.
func (s *SessionSurface) Popup() (entities.Popup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.popup == nil {
		return entities.Popup{}, false
	}
	return *s.popup, true
}

func (s *SessionSurface) ReportError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sink(entities.Command{Op: entities.OpError, Message: err.Error()})
}

// Layers returns the declared layers in declaration order.
func (s *SessionSurface) Layers() []entities.Layer {
	s.mu.Lock()
	defer s.mu.Unlock()

	layers := make([]entities.Layer, len(s.layers))
	copy(layers, s.layers)
	return layers
}

func (s *SessionSurface) Source(id string) (entities.Source, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.sources[id]
	return source, ok
}
