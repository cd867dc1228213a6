package service

import (
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
)

type FeatureStateWriter interface {
	SetFeatureState(target entities.FeatureTarget, state entities.FeatureState)
}

// hoverState is Idle when active is false, Hovering(id) otherwise.
type hoverState struct {
	active bool
	id     entities.FeatureID
}

// HoverTracker keeps at most one feature in hover state. The previous feature
// is always cleared before the next one is set.
type HoverTracker struct {
	writer      FeatureStateWriter
	source      string
	sourceLayer string

	// clearOnEmpty makes a pointer move over no features behave like a leave.
	clearOnEmpty bool

	state hoverState
}

func NewHoverTracker(writer FeatureStateWriter, source, sourceLayer string, clearOnEmpty bool) *HoverTracker {
	return &HoverTracker{
		writer:       writer,
		source:       source,
		sourceLayer:  sourceLayer,
		clearOnEmpty: clearOnEmpty,
	}
}

// Hovered returns the hovered feature, false when idle.
func (h *HoverTracker) Hovered() (entities.FeatureID, bool) {
	return h.state.id, h.state.active
}

// PointerMove moves the hover to the first feature under the pointer.
func (h *HoverTracker) PointerMove(features []entities.EventFeature) {
	if len(features) == 0 {
		if h.clearOnEmpty {
			h.PointerLeave()
		}
		return
	}

	candidate := features[0].ID
	if candidate == nil {
		return
	}

	if h.state.active {
		if h.state.id == *candidate {
			return
		}
		h.write(h.state.id, false)
	}

	h.write(*candidate, true)
	h.state = hoverState{active: true, id: *candidate}
}

func (h *HoverTracker) PointerLeave() {
	if !h.state.active {
		return
	}

	h.write(h.state.id, false)
	h.state = hoverState{}
}

func (h *HoverTracker) write(id entities.FeatureID, hover bool) {
	h.writer.SetFeatureState(
		entities.FeatureTarget{Source: h.source, SourceLayer: h.sourceLayer, ID: id},
		entities.FeatureState{Hover: hover},
	)
}
