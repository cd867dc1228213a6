package service_test

import (
	"testing"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/service"
	"github.com/stretchr/testify/assert"
)

type stateWrite struct {
	id    entities.FeatureID
	hover bool
}

type recordingWriter struct {
	writes []stateWrite
	states map[entities.FeatureID]bool
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{states: make(map[entities.FeatureID]bool)}
}

func (w *recordingWriter) SetFeatureState(target entities.FeatureTarget, state entities.FeatureState) {
	w.writes = append(w.writes, stateWrite{id: target.ID, hover: state.Hover})
	w.states[target.ID] = state.Hover
}

func (w *recordingWriter) hovered() []entities.FeatureID {
	var ids []entities.FeatureID
	for id, hover := range w.states {
		if hover {
			ids = append(ids, id)
		}
	}
	return ids
}

func fid(n int64) entities.FeatureID {
	return entities.NumericFeatureID(n)
}

func features(ids ...int64) []entities.EventFeature {
	out := make([]entities.EventFeature, 0, len(ids))
	for _, n := range ids {
		id := fid(n)
		out = append(out, entities.EventFeature{ID: &id})
	}
	return out
}

func TestHoverTracker_ClearsBeforeSet(t *testing.T) {
	writer := newRecordingWriter()
	tracker := service.NewHoverTracker(writer, "radius3-locations", "points-2mn1e9", false)

	tracker.PointerMove(features(42))
	tracker.PointerMove(features(7))
	tracker.PointerLeave()

	assert.Equal(t, []stateWrite{
		{id: fid(42), hover: true},
		{id: fid(42), hover: false},
		{id: fid(7), hover: true},
		{id: fid(7), hover: false},
	}, writer.writes)

	_, ok := tracker.Hovered()
	assert.False(t, ok)
	assert.Empty(t, writer.hovered())
}

func TestHoverTracker_UsesFirstFeature(t *testing.T) {
	writer := newRecordingWriter()
	tracker := service.NewHoverTracker(writer, "src", "", false)

	tracker.PointerMove(features(3, 4, 5))

	id, ok := tracker.Hovered()
	assert.True(t, ok)
	assert.Equal(t, fid(3), id)
	assert.Equal(t, []entities.FeatureID{fid(3)}, writer.hovered())
}

func TestHoverTracker_SameFeatureIsNoop(t *testing.T) {
	writer := newRecordingWriter()
	tracker := service.NewHoverTracker(writer, "src", "", false)

	tracker.PointerMove(features(7))
	tracker.PointerMove(features(7))
	tracker.PointerMove(features(7))

	assert.Len(t, writer.writes, 1)
}

func TestHoverTracker_LeaveWhileIdle(t *testing.T) {
	writer := newRecordingWriter()
	tracker := service.NewHoverTracker(writer, "src", "", false)

	tracker.PointerLeave()
	tracker.PointerLeave()

	assert.Empty(t, writer.writes)
}

func TestHoverTracker_EmptyMoveKeepsHover(t *testing.T) {
	writer := newRecordingWriter()
	tracker := service.NewHoverTracker(writer, "src", "", false)

	tracker.PointerMove(features(7))
	tracker.PointerMove(nil)

	id, ok := tracker.Hovered()
	assert.True(t, ok)
	assert.Equal(t, fid(7), id)
	assert.Len(t, writer.writes, 1)
}

func TestHoverTracker_EmptyMoveClearsWhenConfigured(t *testing.T) {
	writer := newRecordingWriter()
	tracker := service.NewHoverTracker(writer, "src", "", true)

	tracker.PointerMove(features(7))
	tracker.PointerMove(nil)

	_, ok := tracker.Hovered()
	assert.False(t, ok)
	assert.Equal(t, []stateWrite{{id: fid(7), hover: true}, {id: fid(7), hover: false}}, writer.writes)
}

func TestHoverTracker_FeatureWithoutID(t *testing.T) {
	writer := newRecordingWriter()
	tracker := service.NewHoverTracker(writer, "src", "", false)

	tracker.PointerMove(features(7))
	tracker.PointerMove([]entities.EventFeature{{Properties: map[string]any{"Name": "x"}}})

	id, ok := tracker.Hovered()
	assert.True(t, ok)
	assert.Equal(t, fid(7), id)
	assert.Len(t, writer.writes, 1)
}

func TestHoverTracker_AtMostOneHovered(t *testing.T) {
	writer := newRecordingWriter()
	tracker := service.NewHoverTracker(writer, "src", "", false)

	moves := [][]entities.EventFeature{
		features(1), features(2, 1), nil, features(3), features(3), features(1, 2, 3), features(2),
	}
	for _, move := range moves {
		tracker.PointerMove(move)
		assert.LessOrEqual(t, len(writer.hovered()), 1)

		if id, ok := tracker.Hovered(); ok {
			assert.Equal(t, []entities.FeatureID{id}, writer.hovered())
		}
	}
}

func TestHoverTracker_Target(t *testing.T) {
	var targets []entities.FeatureTarget
	writer := featureStateFunc(func(target entities.FeatureTarget, _ entities.FeatureState) {
		targets = append(targets, target)
	})
	tracker := service.NewHoverTracker(writer, "radius3-locations", "points-2mn1e9", false)

	tracker.PointerMove(features(11))

	assert.Equal(t, []entities.FeatureTarget{
		{Source: "radius3-locations", SourceLayer: "points-2mn1e9", ID: fid(11)},
	}, targets)
}

type featureStateFunc func(entities.FeatureTarget, entities.FeatureState)

func (f featureStateFunc) SetFeatureState(target entities.FeatureTarget, state entities.FeatureState) {
	f(target, state)
}

func TestHoverTracker_StringAndNegativeIDs(t *testing.T) {
	writer := newRecordingWriter()
	tracker := service.NewHoverTracker(writer, "src", "", false)

	venue := entities.StringFeatureID("venue-7")
	negative := fid(-3)

	tracker.PointerMove([]entities.EventFeature{{ID: &venue}})
	tracker.PointerMove([]entities.EventFeature{{ID: &negative}})

	assert.Equal(t, []stateWrite{
		{id: venue, hover: true},
		{id: venue, hover: false},
		{id: negative, hover: true},
	}, writer.writes)
}
