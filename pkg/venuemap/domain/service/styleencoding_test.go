package service_test

import (
	"testing"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTable(t *testing.T) *service.StyleEncodingTable {
	t.Helper()

	table, err := service.NewStyleEncodingTable(service.DefaultCategories(), service.EncodingDefaults{})
	require.NoError(t, err)
	return table
}

func TestStyleEncodingTable_KnownCategory(t *testing.T) {
	table := defaultTable(t)

	assert.Equal(t, 12.0, table.RadiusFor("Opera house"))
	assert.Equal(t, "#96c535", table.ColorFor("Opera house", false))
	assert.Equal(t, 14.0, table.RadiusFor("Event venue"))
	assert.Equal(t, "#00a496", table.ColorFor("Event venue", false))
	assert.Equal(t, 6.0, table.RadiusFor("Comedy club"))
	assert.Equal(t, "#844aa8", table.ColorFor("Performing arts theater", false))
}

func TestStyleEncodingTable_UnknownCategory(t *testing.T) {
	table := defaultTable(t)

	assert.Equal(t, 10.0, table.RadiusFor("Aquarium"))
	assert.Equal(t, "#ccc", table.ColorFor("Aquarium", false))
	assert.Equal(t, 10.0, table.RadiusFor(""))
}

func TestStyleEncodingTable_HoverWins(t *testing.T) {
	table := defaultTable(t)

	for _, label := range append(table.Labels(), "Aquarium", "") {
		assert.Equal(t, "#ffffff", table.ColorFor(label, true), label)
	}
}

func TestStyleEncodingTable_Labels(t *testing.T) {
	table := defaultTable(t)

	assert.Equal(t, []string{
		"Comedy club",
		"Concert hall",
		"Cultural center",
		"Event venue",
		"Live music venue",
		"Movie theater",
		"Opera house",
		"Performing arts theater",
	}, table.Labels())
}

func TestStyleEncodingTable_RadiusExpression(t *testing.T) {
	table, err := service.NewStyleEncodingTable([]entities.Category{
		{Label: "b", Radius: 2, Color: "#bbb"},
		{Label: "a", Radius: 1, Color: "#aaa"},
	}, service.EncodingDefaults{})
	require.NoError(t, err)

	expected := entities.Expression{
		"match", entities.Expression{"get", "Type"},
		"a", 1.0,
		"b", 2.0,
		10.0,
	}
	assert.Equal(t, expected, table.RadiusExpression())
	assert.Equal(t, table.RadiusExpression(), table.RadiusExpression())
}

func TestStyleEncodingTable_ColorExpression(t *testing.T) {
	table, err := service.NewStyleEncodingTable([]entities.Category{
		{Label: "a", Radius: 1, Color: "#aaa"},
	}, service.EncodingDefaults{Color: "#123", Highlight: "#fff000"})
	require.NoError(t, err)

	expected := entities.Expression{
		"case",
		entities.Expression{"boolean", entities.Expression{"feature-state", "hover"}, false},
		"#fff000",
		entities.Expression{"match", entities.Expression{"get", "Type"}, "a", "#aaa", "#123"},
	}
	assert.Equal(t, expected, table.ColorExpression())
}

func TestStyleEncodingTable_EmptyTable(t *testing.T) {
	table, err := service.NewStyleEncodingTable(nil, service.EncodingDefaults{})
	require.NoError(t, err)

	assert.Equal(t, 10.0, table.RadiusExpression())
	assert.Equal(t, entities.Expression{
		"case",
		entities.Expression{"boolean", entities.Expression{"feature-state", "hover"}, false},
		"#ffffff",
		"#ccc",
	}, table.ColorExpression())
}

func TestNewStyleEncodingTable_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		categories []entities.Category
	}{
		{"empty label", []entities.Category{{Label: "", Radius: 1, Color: "#000"}}},
		{"duplicate label", []entities.Category{{Label: "a", Radius: 1, Color: "#000"}, {Label: "a", Radius: 2, Color: "#111"}}},
		{"zero radius", []entities.Category{{Label: "a", Radius: 0, Color: "#000"}}},
		{"negative radius", []entities.Category{{Label: "a", Radius: -3, Color: "#000"}}},
		{"empty color", []entities.Category{{Label: "a", Radius: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.NewStyleEncodingTable(tt.categories, service.EncodingDefaults{})
			assert.ErrorIs(t, err, service.ErrInvalidCategory)
		})
	}
}
