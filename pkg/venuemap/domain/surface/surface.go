package surface

import (
	"errors"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
)

var (
	ErrDuplicateSource = errors.New("source already exists")
	ErrDuplicateLayer  = errors.New("layer already exists")
	ErrDuplicateImage  = errors.New("image already exists")
	ErrUnknownSource   = errors.New("source does not exist")
	ErrUnknownLayer    = errors.New("layer does not exist")
)

// CommandSink receives every successful write to a MapSurface, in order.
type CommandSink func(entities.Command)

// MapSurface is the render-state store of a single map. Feature state,
// layer layout, registered images and the camera live here; the browser
// mapping SDK mirrors it.
type MapSurface interface {
	AddSource(id string, source entities.Source) error
	AddLayer(layer entities.Layer) error
	HasLayer(id string) bool

	HasImage(name string) bool
	AddImage(image entities.Image) error

	SetFeatureState(target entities.FeatureTarget, state entities.FeatureState)
	FeatureState(target entities.FeatureTarget) entities.FeatureState

	// LayoutProperty reports false if the layer does not exist.
	LayoutProperty(layerID, name string) (string, bool)
	SetLayoutProperty(layerID, name, value string) error

	FlyTo(camera entities.Camera)
	Camera() entities.Camera

	ShowPopup(popup entities.Popup)
	ReportError(err error)
}
